package ir

import "fmt"

// LinkDir is the output subdirectory holding link payloads.
const LinkDir = "data"

// SetName is the synthetic identifier of the n-th unordered set.
func SetName(n int64) Identifier { return Identifier(fmt.Sprintf(".set_%d", n)) }

// OrderedSetName is the synthetic identifier of the n-th ordered set.
func OrderedSetName(n int64) Identifier { return Identifier(fmt.Sprintf(".oset_%d", n)) }

// ArcName is the structural name of the n-th arc: "<category>#<n>", or
// ".arc_<n>" when the connector has no category.
func ArcName(category string, n int64) Identifier {
	if category == "" {
		return Identifier(fmt.Sprintf(".arc_%d", n))
	}
	return Identifier(fmt.Sprintf("%s#%d", category, n))
}

// LinkName is the synthetic identifier of the n-th link.
func LinkName(n int64) Identifier { return Identifier(fmt.Sprintf("%s/link_%d", LinkDir, n)) }

// LinkRef is the quoted file reference that stands for a link in triples.
func LinkRef(link Identifier) Identifier { return Identifier(fmt.Sprintf(`"file://%s"`, link)) }

// OrderMarker is the role identifier of the n-th (1-based) ordered member.
func OrderMarker(n int) Identifier { return Identifier(fmt.Sprintf("%d_", n)) }
