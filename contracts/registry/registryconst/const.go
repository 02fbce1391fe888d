package registryconst

// ContentRecord.SequenceType values.
const (
	SequenceWholeGenome = 0
	SequenceExome       = 1
	SequenceTargeted    = 2
)

// ContentRecord.Visibility values.
const (
	VisibilityPublic     = 0
	VisibilityPrivate    = 1
	VisibilityRestricted = 2
)

// Field constraints of a content record.
const (
	// ContentHashSize is the exact length of a content fingerprint (SHA256).
	ContentHashSize = 32
	// MaxMetadataLength limits the metadata field, which also must not be empty.
	MaxMetadataLength = 512
	// MaxLinkLength limits the optional off-chain payload link.
	MaxLinkLength = 256
	// MaxCategoryLength limits the category field, which also must not be empty.
	MaxCategoryLength = 50
	// MaxTags limits the number of tags per record.
	MaxTags = 10
	// MaxTagLength limits a single tag.
	MaxTagLength = 50
	// MaxDescriptionLength limits the description field.
	MaxDescriptionLength = 1024
	// AccessLogCapacity is the size of the per-content access log ring.
	// Once full, the oldest entry is evicted on every new access.
	AccessLogCapacity = 100
)

// Error messages thrown by the registry contract.
const (
	// ErrNotFound is returned if the referenced content is missing.
	ErrNotFound = "content does not exist"
	// ErrHashExists is returned on an attempt to register an already
	// registered content fingerprint.
	ErrHashExists = "content hash already registered"
	// ErrPrivateContent is returned on an attempt to log access to
	// private content.
	ErrPrivateContent = "access to private content can't be logged"

	ErrInvalidHash       = "incorrect length of content hash"
	ErrMetadataLength    = "invalid metadata length"
	ErrLinkLength        = "invalid external link length"
	ErrSequenceType      = "unknown sequence type"
	ErrVisibility        = "unknown visibility"
	ErrExpiry            = "expiry must be in the future"
	ErrCategoryLength    = "invalid category length"
	ErrTagsCount         = "too many tags"
	ErrTagLength         = "invalid tag length"
	ErrDescriptionLength = "invalid description length"
)
