package models

// WireID carries both identifier fields a remote document may hold.
// The server's storage key arrives as "_id"; everything past the service
// layer reads ID only.
type WireID struct {
	ID    string `json:"id,omitempty"`
	RawID string `json:"_id,omitempty"`
}

// Normalize copies the storage key into ID.
func (w *WireID) Normalize() {
	if w.RawID != "" {
		w.ID = w.RawID
	}
}

func (w WireID) Identifier() string {
	return w.ID
}

// Normalizer is implemented by every wire document.
type Normalizer interface {
	Normalize()
}
