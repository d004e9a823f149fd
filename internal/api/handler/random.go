package handler

import (
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strconv"

	"github.com/unyx/random"
	"github.com/unyx/random/internal/api/response"
)

const (
	// defaultLength applies when a generation endpoint gets no length param.
	defaultLength = 32

	// maxLength caps a single request so one caller cannot drain the
	// entropy pool with a giant draw.
	maxLength = 4096
)

// RandomHandler handles the generation endpoints
type RandomHandler struct {
	generator *random.Generator
}

// NewRandomHandler creates a new generation handler
func NewRandomHandler(generator *random.Generator) *RandomHandler {
	return &RandomHandler{generator: generator}
}

// Bytes handles GET /api/v1/bytes
func (h *RandomHandler) Bytes(w http.ResponseWriter, r *http.Request) {
	length, err := lengthParam(r, defaultLength)
	if err != nil {
		WriteError(w, err)
		return
	}

	encoding := r.URL.Query().Get("encoding")
	if encoding == "" {
		encoding = "base64"
	}
	if encoding != "base64" && encoding != "hex" {
		WriteError(w, NewInvalidRequestError("encoding must be base64 or hex"))
		return
	}

	data, err := h.generator.Bytes(length)
	if err != nil {
		WriteError(w, err)
		return
	}

	var encoded string
	if encoding == "hex" {
		encoded = hex.EncodeToString(data)
	} else {
		encoded = base64.StdEncoding.EncodeToString(data)
	}

	response.JSON(w, http.StatusOK, response.Bytes{
		Data:     encoded,
		Length:   length,
		Strength: h.generator.Strength().String(),
	})
}

// Int handles GET /api/v1/int
func (h *RandomHandler) Int(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	min, err := int64Param(q.Get("min"), 0)
	if err != nil {
		WriteError(w, NewInvalidRequestError("min must be an integer"))
		return
	}

	maxRaw := q.Get("max")
	if maxRaw == "" {
		WriteError(w, NewInvalidRequestError("max is required"))
		return
	}
	max, err := strconv.ParseInt(maxRaw, 10, 64)
	if err != nil {
		WriteError(w, NewInvalidRequestError("max must be an integer"))
		return
	}

	value, err := h.generator.Int(min, max)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Int{
		Value:    value,
		Min:      min,
		Max:      max,
		Strength: h.generator.Strength().String(),
	})
}

// Float handles GET /api/v1/float
func (h *RandomHandler) Float(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	min, err := float64Param(q.Get("min"), 0)
	if err != nil {
		WriteError(w, NewInvalidRequestError("min must be a number"))
		return
	}
	max, err := float64Param(q.Get("max"), 1)
	if err != nil {
		WriteError(w, NewInvalidRequestError("max must be a number"))
		return
	}

	value, err := h.generator.Float64(min, max)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Float{
		Value:    value,
		Min:      min,
		Max:      max,
		Strength: h.generator.Strength().String(),
	})
}

// Bool handles GET /api/v1/bool
func (h *RandomHandler) Bool(w http.ResponseWriter, r *http.Request) {
	value, err := h.generator.Bool()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Bool{
		Value:    value,
		Strength: h.generator.Strength().String(),
	})
}

// String handles GET /api/v1/string
func (h *RandomHandler) String(w http.ResponseWriter, r *http.Request) {
	length, err := lengthParam(r, defaultLength)
	if err != nil {
		WriteError(w, err)
		return
	}

	flagsRaw := r.URL.Query().Get("flags")
	if flagsRaw == "" {
		// No alphabet requested: dense URL-safe text.
		value, err := h.generator.String(length)
		if err != nil {
			WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.String{
			Value:    value,
			Length:   length,
			Strength: h.generator.Strength().String(),
		})
		return
	}

	flags, err := random.ParseFlags(flagsRaw)
	if err != nil {
		WriteError(w, err)
		return
	}

	value, err := h.generator.StringFlags(length, flags)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.String{
		Value:    value,
		Length:   length,
		Alphabet: flags.String(),
		Strength: h.generator.Strength().String(),
	})
}

// Alphabet handles GET /api/v1/alphabet
func (h *RandomHandler) Alphabet(w http.ResponseWriter, r *http.Request) {
	flagsRaw := r.URL.Query().Get("flags")
	if flagsRaw == "" {
		WriteError(w, NewInvalidRequestError("flags is required"))
		return
	}

	flags, err := random.ParseFlags(flagsRaw)
	if err != nil {
		WriteError(w, err)
		return
	}

	alphabet, err := random.BuildAlphabet(flags)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Alphabet{
		Flags:    flags.String(),
		Alphabet: string(alphabet),
		Size:     alphabet.Len(),
	})
}

// lengthParam parses the length query param, bounding it to maxLength.
func lengthParam(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("length")
	if raw == "" {
		return fallback, nil
	}

	length, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewInvalidRequestError("length must be an integer")
	}
	if length > maxLength {
		return 0, NewInvalidRequestError("length exceeds the maximum of 4096")
	}
	return length, nil
}

func int64Param(raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func float64Param(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}
