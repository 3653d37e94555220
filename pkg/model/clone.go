package model

// Clone returns a value copy of the field. The hint is copied too so callers
// never observe their own descriptors changing when the builder augments a
// list.
func (f Field) Clone() Field {
	out := f
	if f.Hint != nil {
		hint := *f.Hint
		if f.Hint.Action != nil {
			action := *f.Hint.Action
			hint.Action = &action
		}
		out.Hint = &hint
	}
	return out
}

// CloneFields copies every field in the slice. The result can be handed to
// caller-supplied filters without exposing internal state to mutation.
func CloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f.Clone()
	}
	return out
}
