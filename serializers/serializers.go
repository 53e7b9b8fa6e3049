// Package serializers maps persisted records to and from their JSON wire
// shape. Each resource gets one function for "record -> wire object" and
// one input type carrying "wire input -> validated fields"; owner is never
// taken from the client.
package serializers

// Errors maps a field name to a human-readable problem with its value.
// An empty map means the input passed validation. It doubles as the body
// of every 400 response.
type Errors map[string]string

// Detail is the field key for problems not tied to a single input field.
const Detail = "detail"
