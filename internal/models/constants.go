// Package models contains data types and constants shared across selam.
package models

import "fmt"

// EndpointGenerate is the generateContent endpoint of the Gemini API.
// The model name is interpolated into the path.
const EndpointGenerate = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// GenerateURL returns the generateContent URL for the given model name.
func GenerateURL(modelName string) string {
	return fmt.Sprintf(EndpointGenerate, modelName)
}

// Model represents an available Gemini model.
type Model struct {
	Name string
}

// Available models
var (
	ModelFlash = Model{Name: "gemini-2.5-flash"}
	ModelPro   = Model{Name: "gemini-2.5-pro"}

	// DefaultModel is the recommended default
	DefaultModel = ModelFlash
)

// AllModels returns a list of all available models.
func AllModels() []Model {
	return []Model{ModelFlash, ModelPro}
}

// ModelFromName returns a Model by its name. Short aliases from the config
// file ("fast", "pro") are accepted too. Unknown names fall back to the
// default model.
func ModelFromName(name string) Model {
	switch name {
	case "gemini-2.5-flash", "fast", "flash":
		return ModelFlash
	case "gemini-2.5-pro", "pro":
		return ModelPro
	default:
		return DefaultModel
	}
}

// DefaultHeaders returns the headers sent with every generate request.
func DefaultHeaders(apiKey string) map[string]string {
	return map[string]string{
		"Content-Type":   "application/json",
		"x-goog-api-key": apiKey,
	}
}
