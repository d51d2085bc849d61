// Package fingerprint computes the change fingerprint: a deterministic
// SHA-256 digest over the normalized definition snapshot. The digest is the
// redeployment trigger: identical logical content always hashes identically
// regardless of map ordering, and any field change in any entry changes it.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/restgraph/restgraph/compiler/definition"
)

// Compute returns the lowercase-hex SHA-256 digest of the snapshot's
// canonical JSON form. encoding/json emits map keys in sorted order, so the
// canonical form is independent of how the snapshot's maps were populated.
//
// Every compiled field participates, including free-text descriptions: a
// purely cosmetic edit forces a redeployment. Pruning "deploy-insensitive"
// fields is deliberately not done here.
func Compute(snap *definition.Snapshot) (string, error) {
	canonical, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("normalizing snapshot: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
