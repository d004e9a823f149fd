package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GenerateResult:
		fmt.Println(v.Value)
	case AlphabetResult:
		o.printAlphabetResult(v)
	case TokenResult:
		o.printTokenResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GenerateResult is one generated value with its provenance
type GenerateResult struct {
	Value    string `json:"value"`
	Strength string `json:"strength"`
}

// AlphabetResult is a resolved alphabet
type AlphabetResult struct {
	Flags    string `json:"flags"`
	Alphabet string `json:"alphabet"`
	Size     int    `json:"size"`
}

// TokenResult matches the API token response
type TokenResult struct {
	ID        string `json:"id"`
	Value     string `json:"value,omitempty"`
	Purpose   string `json:"purpose"`
	Strength  string `json:"strength"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// HealthResult matches the API health response
type HealthResult struct {
	Status   string `json:"status"`
	Strength string `json:"strength"`
}

func (o *Output) printAlphabetResult(a AlphabetResult) {
	fmt.Printf("Flags: %s\n", a.Flags)
	fmt.Printf("Alphabet (%d): %s\n", a.Size, a.Alphabet)
}

func (o *Output) printTokenResult(t TokenResult) {
	fmt.Printf("Token: %s\n", t.ID)
	if t.Value != "" {
		fmt.Printf("Value: %s\n", t.Value)
	}
	fmt.Printf("Purpose: %s\n", t.Purpose)
	fmt.Printf("Strength: %s\n", t.Strength)
	fmt.Printf("Created: %s\n", t.CreatedAt)
	if t.ExpiresAt != "" {
		fmt.Printf("Expires: %s\n", t.ExpiresAt)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	fmt.Printf("Strength: %s\n", h.Strength)
}
