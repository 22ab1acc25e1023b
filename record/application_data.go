package record

import "fmt"

// ApplicationData is an opaque application_data fragment. The record
// layer treats the payload as transparent data (RFC 5246 section 10);
// under a live session it is ciphertext anyway.
type ApplicationData struct {
	Data []byte
}

// DecodeApplicationData accepts any fragment, including an empty one.
func DecodeApplicationData(fragment []byte) (Body, error) {
	data := make([]byte, len(fragment))
	copy(data, fragment)
	return &ApplicationData{Data: data}, nil
}

func (a *ApplicationData) Marshal() ([]byte, error) {
	return a.Data, nil
}

func (a *ApplicationData) String() string {
	return fmt.Sprintf("  Application Data (%d bytes)", len(a.Data))
}
