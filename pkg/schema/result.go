package schema

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// QueryResult is the client-side projection of a query's outcome.
// Response is nil when the query is absent or could not be fetched; a
// present query without response content projects to "No response".
type QueryResult struct {
	Status   Phase   `json:"status"`
	Terminal bool    `json:"terminal"`
	Response *string `json:"response,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// NoResponse is the response text projected for a query which has not
// produced any content.
const NoResponse = "No response"

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r QueryResult) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
