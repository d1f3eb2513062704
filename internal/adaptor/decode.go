package adaptor

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/gorilla/schema"
)

const formMediaType = "application/x-www-form-urlencoded"

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	return d
}

// decodeBody fills dst from a JSON body, or from a url-encoded form when the
// client posts one. Form values arrive as strings and are kept that way.
func decodeBody(r *http.Request, dst any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == formMediaType {
		if err := r.ParseForm(); err != nil {
			return err
		}
		return formDecoder.Decode(dst, r.PostForm)
	}

	return json.NewDecoder(r.Body).Decode(dst)
}
