package shared

import (
	"fmt"
	"net/http"

	"github.com/go-playground/form"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var Decoder = newDecoder()

func newDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		return uuid.Parse(vals[0])
	}, uuid.UUID{})
	return d
}

// ParseUUID parses the named mux route variable as a UUID.
func ParseUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return uuid.Nil, fmt.Errorf("missing route variable %q", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uuid %q: %w", raw, err)
	}
	return id, nil
}
