package container

// ImageConfig contains all images and their respective tags
// needed by the docker backed tests.
type ImageConfig struct {
	MongoRepository string
	MongoVersion    string
}

const (
	dockerMongoRepository = "mongo"
	// it should be in sync with mongo version used in production
	dockerMongoVersionTag = "7.0.5"
)

// NewImageConfig returns the images the tests run against.
func NewImageConfig() ImageConfig {
	return ImageConfig{
		MongoRepository: dockerMongoRepository,
		MongoVersion:    dockerMongoVersionTag,
	}
}
