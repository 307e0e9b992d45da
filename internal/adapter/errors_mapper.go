package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tdterm/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into an error. When the body is a
// library error object, the returned error also wraps *models.RequestError.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		sentinel = fmt.Errorf("http %d", resp.StatusCode())
	}

	if reqErr := decodeRequestError(resp.Body()); reqErr != nil {
		return fmt.Errorf("%w: %w", sentinel, reqErr)
	}

	return fmt.Errorf("%w: %s", sentinel, body)
}

// decodeRequestError returns the library error carried by body, or nil when
// body is not an error object.
func decodeRequestError(body []byte) *models.RequestError {
	typ, err := models.PeekType(body)
	if err != nil || typ != models.TypeError {
		return nil
	}

	var reqErr models.RequestError
	if err = json.Unmarshal(body, &reqErr); err != nil {
		return nil
	}
	return &reqErr
}

// expectOK checks that a successful response body is the "ok" object.
func expectOK(body []byte) error {
	typ, err := models.PeekType(body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if typ != models.TypeOK {
		return fmt.Errorf("%w: got %q, want %q", ErrUnexpectedResponse, typ, models.TypeOK)
	}
	return nil
}
