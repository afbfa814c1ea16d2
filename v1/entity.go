package lemmy

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/dustin/go-humanize"
	"github.com/google/go-querystring/query"
)

// Marshal a form as a JSON request body
func marshalForm(form interface{}) ([]byte, error) {
	return json.Marshal(form)
}

// Encode a form as a URL query string. A nil form produces an empty query, as
// does a form with no set fields.
func queryString(form interface{}) (string, error) {
	v := reflect.ValueOf(form)
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return "", nil
	}
	q, err := query.Values(form)
	if err != nil {
		return "", err
	}
	return q.Encode(), nil
}

// Decode a response body as the untagged union of the expected response shape
// and the structured error shape. The error shape is attempted first, keyed
// on the presence of a non-empty "error" member: the JSON decoder ignores
// unknown members, so an error body would otherwise satisfy nearly any
// response shape. A body matching neither shape is reported as an opaque
// decode failure, which most commonly indicates a version mismatch between
// the client and the instance.
func decodeResult[R any](data []byte) (*R, error) {
	var aerr APIError
	if err := json.Unmarshal(data, &aerr); err == nil && aerr.Kind != "" {
		return nil, &aerr
	}
	var rsp R
	if err := json.Unmarshal(data, &rsp); err != nil {
		return nil, wrapErr(err, ErrCouldNotUnmarshalResponse)
	}
	return &rsp, nil
}

// A captured payload, as displayed by debug dumps
type Entity struct {
	ContentType string
	Data        []byte
}

func (e Entity) String() string {
	return fmt.Sprintf("---\n%s (%s)\n---\n%s\n#", e.ContentType, humanize.Bytes(uint64(len(e.Data))), string(e.Data))
}
