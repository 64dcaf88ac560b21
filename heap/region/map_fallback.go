//go:build !unix

package region

// NewMap falls back to an in-process region where anonymous mappings are not
// available.
func NewMap(limit int64) (Region, error) {
	return NewMem(limit), nil
}
