package domain

// FieldID is the mandatory identifier field present on every stored document.
const FieldID = "_id"

// Document represents a document in a collection. Beyond the identifier
// field there is no enforced schema; all other fields are opaque payload.
type Document map[string]interface{}

// ID returns the document's identifier, or "" if it is missing or not a string.
func (d Document) ID() string {
	id, _ := d[FieldID].(string)
	return id
}

// Clone returns a shallow copy of the document. A nil document clones to an
// empty one, so callers can always assign into the copy.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
