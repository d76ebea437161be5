package request

import (
	"net/http"
	"strconv"

	"starwars-api/internal/shared/errors"
)

// PathInt reads an integer path value registered as {name}. label names the
// value in error messages, e.g. "user ID".
func PathInt(r *http.Request, name, label string) (int, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, errors.Validationf("%s is required", label)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WrapValidation("invalid "+label+" format", err)
	}
	return value, nil
}
