package http

import "github.com/MKhiriev/cf-error-page/models"

type paramsResponse struct {
	State  string        `json:"state"`
	Params models.Params `json:"params"`
}
