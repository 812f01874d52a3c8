package entities

import "encoding/json"

// UpstreamResponse сырой ответ токен-сервиса.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

type IceServerToken = json.RawMessage

type SpeechToken struct {
	Token  string
	Region string
}
