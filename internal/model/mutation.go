package model

import "encoding/json"

// MutationRecord describes one accepted splice. The ordered list of records
// of a session is its audit log.
type MutationRecord struct {
	Kind        string
	Start       int
	End         int
	Original    []byte
	Replacement []byte
}

// Delta returns how much the buffer grew (or shrank) with this splice.
func (r MutationRecord) Delta() int {
	return len(r.Replacement) - (r.End - r.Start)
}

// mutationRecordText is the serialized form; snippets are source text.
type mutationRecordText struct {
	Kind        string `json:"kind" yaml:"kind"`
	Start       int    `json:"start" yaml:"start"`
	End         int    `json:"end" yaml:"end"`
	Original    string `json:"original" yaml:"original"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

func (r MutationRecord) text() mutationRecordText {
	return mutationRecordText{
		Kind:        r.Kind,
		Start:       r.Start,
		End:         r.End,
		Original:    string(r.Original),
		Replacement: string(r.Replacement),
	}
}

func (t mutationRecordText) record() MutationRecord {
	return MutationRecord{
		Kind:        t.Kind,
		Start:       t.Start,
		End:         t.End,
		Original:    []byte(t.Original),
		Replacement: []byte(t.Replacement),
	}
}

// MarshalJSON writes the snippets as strings.
func (r MutationRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.text())
}

// UnmarshalJSON reads a record written by MarshalJSON.
func (r *MutationRecord) UnmarshalJSON(data []byte) error {
	var t mutationRecordText
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}

	*r = t.record()

	return nil
}

// MarshalYAML writes the snippets as strings.
func (r MutationRecord) MarshalYAML() (any, error) {
	return r.text(), nil
}
