package store

type ArtifactType string

const (
	ArtifactTypeRequirements ArtifactType = "requirements"
	ArtifactTypeArchitecture ArtifactType = "architecture"
	ArtifactTypeDB           ArtifactType = "db"
	ArtifactTypeAPI          ArtifactType = "api"
	ArtifactTypeUI           ArtifactType = "ui"
	ArtifactTypeTests        ArtifactType = "tests"
	ArtifactTypeDeploy       ArtifactType = "deploy"
	ArtifactTypeOther        ArtifactType = "other"
)

// ArtifactTypeFromString resolves a raw type value, defaulting to "other".
func ArtifactTypeFromString(raw string) ArtifactType {
	switch t := ArtifactType(raw); t {
	case ArtifactTypeRequirements, ArtifactTypeArchitecture, ArtifactTypeDB,
		ArtifactTypeAPI, ArtifactTypeUI, ArtifactTypeTests, ArtifactTypeDeploy:
		return t
	default:
		return ArtifactTypeOther
	}
}

type Artifact struct {
	ID        int32
	UID       string
	ProjectID int32
	Type      ArtifactType
	Title     string
	Content   string
	Version   int32
	CreatedTs int64
}

type FindArtifact struct {
	ID        *int32
	UID       *string
	ProjectID *int32
	Type      *ArtifactType
}
