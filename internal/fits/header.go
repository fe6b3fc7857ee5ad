package fits

import (
	"fmt"
	"strconv"
	"strings"
)

// Header holds FITS header cards in file order. Keys are upper case.
type Header struct {
	keys   []string
	values map[string]string
}

// NewHeader returns an empty header.
func NewHeader() *Header {
	return &Header{values: make(map[string]string)}
}

// Keys returns the card keywords in insertion order.
func (h *Header) Keys() []string {
	return append([]string(nil), h.keys...)
}

// Get returns the raw value of key.
func (h *Header) Get(key string) (string, bool) {
	v, ok := h.values[strings.ToUpper(key)]
	return v, ok
}

// Set stores value under key, keeping the original position of an existing
// card.
func (h *Header) Set(key, value string) {
	k := strings.ToUpper(key)
	if _, ok := h.values[k]; !ok {
		h.keys = append(h.keys, k)
	}
	h.values[k] = value
}

// SetFloat stores a numeric value.
func (h *Header) SetFloat(key string, v float64) {
	h.Set(key, strconv.FormatFloat(v, 'G', -1, 64))
}

// SetInt stores an integer value.
func (h *Header) SetInt(key string, v int) {
	h.Set(key, strconv.Itoa(v))
}

func (h *Header) GetString(key string) string {
	v, _ := h.Get(key)
	return v
}

func (h *Header) GetDouble(key string) (float64, bool) {
	v, ok := h.Get(key)
	if !ok {
		return 0, false
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return d, true
}

func (h *Header) GetInt(key string) (int, bool) {
	v, ok := h.Get(key)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return i, true
}

// Clone returns a deep copy of h.
func (h *Header) Clone() *Header {
	out := NewHeader()
	for _, k := range h.keys {
		out.Set(k, h.values[k])
	}
	return out
}

// parseValue strips quotes from string values and maps logical T/F.
func parseValue(raw string) string {
	if raw == "" {
		return ""
	}
	if raw == "T" {
		return "True"
	}
	if raw == "F" {
		return "False"
	}
	if strings.HasPrefix(raw, "'") {
		endQuote := strings.LastIndex(raw, "'")
		if endQuote > 0 {
			return strings.ReplaceAll(strings.TrimRight(raw[1:endQuote], " "), "''", "'")
		}
		return strings.TrimLeft(strings.TrimRight(raw, " "), "'")
	}
	return raw
}

// formatCard renders one 80-byte header card.
func formatCard(key, value string) string {
	var v string
	switch {
	case value == "True":
		v = fmt.Sprintf("%20s", "T")
	case value == "False":
		v = fmt.Sprintf("%20s", "F")
	case isNumeric(value):
		v = fmt.Sprintf("%20s", value)
	default:
		v = fmt.Sprintf("'%-8s'", strings.ReplaceAll(value, "'", "''"))
	}

	card := fmt.Sprintf("%-8s= %s", key, v)
	if len(card) > cardSize {
		card = card[:cardSize]
	}
	return fmt.Sprintf("%-80s", card)
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
