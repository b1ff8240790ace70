package elasticluster

import (
	"path/filepath"
	"strings"
)

// Clusters lists the names of saved clusters by enumerating state files
// in the storage directory. Names come back in directory-listing order.
// A missing directory or an empty match set yields an empty list.
func (c *Client) Clusters() []string {
	matches, err := filepath.Glob(filepath.Join(c.storageDir, "*"+c.storageSuffix))
	if err != nil {
		// Only a malformed pattern reaches here.
		c.log.Debug().Err(err).Str("dir", c.storageDir).Msg("cluster glob failed")
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), c.storageSuffix))
	}
	return names
}
