package types

type ValidationOutcome struct {
	Passed bool
	Reason string
}

type Resolution struct {
	ID                 string
	Recipe             string
	Version            string
	Descriptor         TargetDescriptor
	Outcome            ValidationOutcome
	Requirements       []Requirement
	ToolchainVariables []ToolchainVariable
	PackageInfo        PackageInfo
	Source             *SourceEntry
}

// ResolutionReport is the summary written next to the resolution outputs.
type ResolutionReport struct {
	Recipe       string
	Version      string
	ResolutionID string
	CreatedAt    string
	Outcome      string
	SourceURL    string
	SourceSHA256 string
	Patches      int
}
