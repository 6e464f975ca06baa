package adapters

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"recipekit/internal/ports"
	"recipekit/internal/types"
)

const DefaultSBOMNamespace = "https://recipekit.dev/spdx/resolutions"

type SBOMWriterAdapter struct {
	NamespaceBase string
}

func NewSBOMWriterAdapter() SBOMWriterAdapter {
	return SBOMWriterAdapter{}
}

type spdxCreationInfo struct {
	Created  string   `json:"created"`
	Creators []string `json:"creators"`
}

type spdxPackage struct {
	SPDXID           string `json:"SPDXID"`
	Name             string `json:"name"`
	VersionInfo      string `json:"versionInfo"`
	DownloadLocation string `json:"downloadLocation"`
	LicenseConcluded string `json:"licenseConcluded"`
	LicenseDeclared  string `json:"licenseDeclared"`
	Supplier         string `json:"supplier"`
	Comment          string `json:"comment,omitempty"`
}

type spdxRelationship struct {
	SpdxElementID      string `json:"spdxElementId"`
	RelationshipType   string `json:"relationshipType"`
	RelatedSpdxElement string `json:"relatedSpdxElement"`
}

type spdxDocument struct {
	SPDXVersion       string             `json:"SPDXVersion"`
	DataLicense       string             `json:"DataLicense"`
	SPDXID            string             `json:"SPDXID"`
	Name              string             `json:"name"`
	DocumentNamespace string             `json:"documentNamespace"`
	CreationInfo      spdxCreationInfo   `json:"creationInfo"`
	Packages          []spdxPackage      `json:"packages"`
	Relationships     []spdxRelationship `json:"relationships"`
	DocumentDescribes []string           `json:"documentDescribes"`
}

// WriteSBOM writes <dir>/<resolution id>.sbom.json. The recipe package is
// the described root; host requirements are DEPENDS_ON edges and build
// requirements are BUILD_DEPENDENCY_OF edges.
func (a SBOMWriterAdapter) WriteSBOM(dir string, resolution types.Resolution, createdAt string) error {
	if strings.TrimSpace(dir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sbom directory is empty")
	}
	if strings.TrimSpace(resolution.ID) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolution id is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create sbom directory").
			WithCause(err)
	}
	created := strings.TrimSpace(createdAt)
	if created == "" {
		created = time.Now().UTC().Format(time.RFC3339)
	}
	namespace := strings.TrimRight(strings.TrimSpace(a.NamespaceBase), "/")
	if namespace == "" {
		namespace = DefaultSBOMNamespace
	}
	rootID := spdxPackageID(resolution.Recipe, resolution.Version)
	download := "NOASSERTION"
	if resolution.Source != nil && resolution.Source.URL != "" {
		download = resolution.Source.URL
	}
	doc := spdxDocument{
		SPDXVersion:       "SPDX-2.3",
		DataLicense:       "CC0-1.0",
		SPDXID:            "SPDXRef-DOCUMENT",
		Name:              fmt.Sprintf("recipekit resolution %s", resolution.ID),
		DocumentNamespace: fmt.Sprintf("%s/%s", namespace, resolution.ID),
		CreationInfo: spdxCreationInfo{
			Created:  created,
			Creators: []string{"Tool: recipekit"},
		},
		Packages: []spdxPackage{{
			SPDXID:           rootID,
			Name:             resolution.Recipe,
			VersionInfo:      resolution.Version,
			DownloadLocation: download,
			LicenseConcluded: "NOASSERTION",
			LicenseDeclared:  "NOASSERTION",
			Supplier:         "NOASSERTION",
		}},
		DocumentDescribes: []string{rootID},
		Relationships: []spdxRelationship{{
			SpdxElementID:      "SPDXRef-DOCUMENT",
			RelationshipType:   "DESCRIBES",
			RelatedSpdxElement: rootID,
		}},
	}
	for _, req := range resolution.Requirements {
		spdxID := spdxPackageID(req.Name, req.Version)
		doc.Packages = append(doc.Packages, spdxPackage{
			SPDXID:           spdxID,
			Name:             req.Name,
			VersionInfo:      req.Version,
			DownloadLocation: "NOASSERTION",
			LicenseConcluded: "NOASSERTION",
			LicenseDeclared:  "NOASSERTION",
			Supplier:         "NOASSERTION",
			Comment:          fmt.Sprintf("context=%s", req.Context),
		})
		if req.Context == types.RequirementBuild {
			doc.Relationships = append(doc.Relationships, spdxRelationship{
				SpdxElementID:      spdxID,
				RelationshipType:   "BUILD_DEPENDENCY_OF",
				RelatedSpdxElement: rootID,
			})
			continue
		}
		doc.Relationships = append(doc.Relationships, spdxRelationship{
			SpdxElementID:      rootID,
			RelationshipType:   "DEPENDS_ON",
			RelatedSpdxElement: spdxID,
		})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal sbom payload").
			WithCause(err)
	}
	path := filepath.Join(dir, resolution.ID+".sbom.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write sbom file").
			WithCause(err)
	}
	return nil
}

func spdxPackageID(name string, version string) string {
	hash := sha256.Sum256([]byte(name + "@" + version))
	return "SPDXRef-Package-" + hex.EncodeToString(hash[:8])
}

var _ ports.SBOMPort = SBOMWriterAdapter{}
