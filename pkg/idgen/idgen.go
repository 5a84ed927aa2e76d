package idgen

import (
	"fmt"

	"github.com/sqids/sqids-go"
)

// sqidsEncoder is the shared Sqids encoder for public IDs.
var sqidsEncoder *sqids.Sqids

// DefaultAlphabet is the default Sqids alphabet.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Entity type tags baked into every public ID so an article ID can never be
// replayed as a user ID.
const (
	EntityTypeUser           uint64 = 1
	EntityTypeArticle        uint64 = 2
	EntityTypeTag            uint64 = 3
	EntityTypeCategory       uint64 = 4
	EntityTypeContactMessage uint64 = 5
)

// InitSqidsEncoder initializes the shared encoder. Must be called once at startup.
func InitSqidsEncoder() error {
	s, err := sqids.New(
		sqids.Options{
			MinLength: 4,
			Alphabet:  DefaultAlphabet,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to initialize sqids encoder: %w", err)
	}
	sqidsEncoder = s
	return nil
}

// GeneratePublicID encodes a database ID plus its entity type into an opaque public ID.
func GeneratePublicID(dbID uint, entityType uint64) (string, error) {
	if sqidsEncoder == nil {
		return "", fmt.Errorf("sqids encoder not initialized")
	}

	id, err := sqidsEncoder.Encode([]uint64{uint64(dbID), entityType})
	if err != nil {
		return "", fmt.Errorf("failed to encode public ID: %w", err)
	}
	return id, nil
}

// DecodePublicID reverses GeneratePublicID.
func DecodePublicID(publicID string) (dbID uint, entityType uint64, err error) {
	if sqidsEncoder == nil {
		return 0, 0, fmt.Errorf("sqids encoder not initialized")
	}

	numbers := sqidsEncoder.Decode(publicID)
	if len(numbers) != 2 {
		return 0, 0, fmt.Errorf("public ID %q did not decode into 2 numbers (got %d)", publicID, len(numbers))
	}
	return uint(numbers[0]), numbers[1], nil
}

// DecodePublicIDBatch decodes a list of public IDs, failing on the first invalid one.
func DecodePublicIDBatch(publicIDs []string) ([]uint, error) {
	if publicIDs == nil {
		return nil, nil
	}
	dbIDs := make([]uint, len(publicIDs))
	for i, publicID := range publicIDs {
		dbID, _, err := DecodePublicID(publicID)
		if err != nil {
			return nil, fmt.Errorf("failed to decode public ID %q: %w", publicID, err)
		}
		dbIDs[i] = dbID
	}
	return dbIDs, nil
}
