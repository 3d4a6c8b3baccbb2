// Package taxonomy holds the static SCs connector lexicon: the structural
// arc category of every connector, the keynode that classifies it, and the
// set of mirrored connectors whose text points against the semantic
// subject→object direction.
package taxonomy

import "sort"

// Structural arc categories.
const (
	ArcCommon = "sc_arc_common"
	ArcMain   = "sc_arc_main"
	ArcAccess = "sc_arc_access"
	Edge      = "sc_edge"
)

// Generic is the connector used for membership and classification arcs
// (attributes, order markers, keynode links).
const Generic = "->"

// Synonym is the equivalence connector. It is not an arc.
const Synonym = "="

var categories = map[string]string{
	">":    ArcCommon,
	"<":    ArcCommon,
	"=>":   ArcCommon,
	"<=":   ArcCommon,
	"_=>":  ArcCommon,
	"_<=":  ArcCommon,
	"->":   ArcMain,
	"<-":   ArcMain,
	"<>":   Edge,
	"<=>":  Edge,
	"_<=>": Edge,
	"..>":  ArcAccess,
	"<..":  ArcAccess,
	"_->":  ArcAccess,
	"_<-":  ArcAccess,
	"-|>":  ArcAccess,
	"_-|>": ArcAccess,
	"<|-":  ArcAccess,
	"_<|-": ArcAccess,
	"-/>":  ArcAccess,
	"_-/>": ArcAccess,
	"</-":  ArcAccess,
	"_</-": ArcAccess,
	"~>":   ArcAccess,
	"_~>":  ArcAccess,
	"<~":   ArcAccess,
	"_<~":  ArcAccess,
	"~|>":  ArcAccess,
	"_~|>": ArcAccess,
	"<|~":  ArcAccess,
	"_<|~": ArcAccess,
	"~/>":  ArcAccess,
	"_~/>": ArcAccess,
	"</~":  ArcAccess,
	"_</~": ArcAccess,
}

var keynodes = map[string]string{
	"<=>":  "sc_edge_const",
	"_<=>": "sc_edge_var",
	"=>":   "sc_arc_common_const",
	"<=":   "sc_arc_common_const",
	"_=>":  "sc_arc_common_var",
	"_<=":  "sc_arc_common_var",
	"_->":  "sc_arc_access_var_pos_perm",
	"_<-":  "sc_arc_access_var_pos_perm",
	"-|>":  "sc_arc_access_const_neg_perm",
	"_-|>": "sc_arc_access_var_neg_perm",
	"<|-":  "sc_arc_access_const_neg_perm",
	"_<|-": "sc_arc_access_var_neg_perm",
	"-/>":  "sc_arc_access_const_fuz_perm",
	"_-/>": "sc_arc_access_var_fuz_perm",
	"</-":  "sc_arc_access_const_fuz_perm",
	"_</-": "sc_arc_access_var_fuz_perm",
	"~>":   "sc_arc_access_const_pos_temp",
	"_~>":  "sc_arc_access_var_pos_temp",
	"<~":   "sc_arc_access_const_pos_temp",
	"_<~":  "sc_arc_access_var_pos_temp",
	"~|>":  "sc_arc_access_const_neg_temp",
	"_~|>": "sc_arc_access_var_neg_temp",
	"<|~":  "sc_arc_access_const_neg_temp",
	"_<|~": "sc_arc_access_var_neg_temp",
	"~/>":  "sc_arc_access_const_fuz_temp",
	"_~/>": "sc_arc_access_var_fuz_temp",
	"</~":  "sc_arc_access_const_fuz_temp",
	"_</~": "sc_arc_access_var_fuz_temp",
}

var mirrored = map[string]bool{
	"<":    true,
	"<..":  true,
	"<-":   true,
	"<=":   true,
	"<|-":  true,
	"</-":  true,
	"<~":   true,
	"<|~":  true,
	"</~":  true,
	"_<-":  true,
	"_<=":  true,
	"_<|-": true,
	"_</-": true,
	"_<~":  true,
	"_<|~": true,
	"_</~": true,
}

// connectors is every arc connector, longest first, for lexing.
var connectors = func() []string {
	out := make([]string, 0, len(categories))
	for c := range categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}()

// Category returns the structural category of a connector.
func Category(connector string) (string, bool) {
	c, ok := categories[connector]
	return c, ok
}

// Keynode returns the keynode classifying arcs of a connector, if any.
func Keynode(connector string) (string, bool) {
	k, ok := keynodes[connector]
	return k, ok
}

// IsMirrored reports whether a connector is written against its semantic
// direction.
func IsMirrored(connector string) bool {
	return mirrored[connector]
}

// Counterpart returns the non-mirrored connector with the same meaning as a
// mirrored one, e.g. "<-" → "->". It returns the input for connectors that
// are not mirrored or have no counterpart in the lexicon.
func Counterpart(connector string) string {
	if !mirrored[connector] {
		return connector
	}
	prefix := ""
	body := connector
	if len(body) > 1 && body[0] == '_' {
		prefix, body = "_", body[1:]
	}
	rev := []byte(body)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	for i, ch := range rev {
		switch ch {
		case '<':
			rev[i] = '>'
		case '>':
			rev[i] = '<'
		}
	}
	if _, ok := categories[prefix+string(rev)]; ok {
		return prefix + string(rev)
	}
	return connector
}

// Connectors returns every arc connector ordered longest first.
func Connectors() []string {
	out := make([]string, len(connectors))
	copy(out, connectors)
	return out
}

// MatchConnector returns the longest connector that prefixes s.
func MatchConnector(s string) (string, bool) {
	for _, c := range connectors {
		if len(s) >= len(c) && s[:len(c)] == c {
			return c, true
		}
	}
	return "", false
}
