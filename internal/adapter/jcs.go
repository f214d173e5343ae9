package adapter

import "github.com/gowebpki/jcs"

// JCS canonicalizes JSON documents (RFC 8785) so metadata files are byte-stable across runs
//
//go:generate mockgen -source=jcs.go -destination=../mocks/jcs.go -package=mocks -mock_names=JCS=MockJCS
type JCS interface {
	Transform(data []byte) ([]byte, error)
}

var _ JCS = (*RealJCS)(nil)

// RealJCS implements JCS using gowebpki/jcs
type RealJCS struct{}

// NewJCS creates a new real JCS implementation
func NewJCS() JCS {
	return &RealJCS{}
}

// Transform sorts object keys and normalizes numbers and string escapes
func (j *RealJCS) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}
