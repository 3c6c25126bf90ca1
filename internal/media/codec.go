package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// MaxBytes is the largest raw attachment the codec accepts: 5 MiB.
const MaxBytes = 5 * 1024 * 1024

// ErrTooLarge is returned by Encode when the raw payload exceeds MaxBytes.
var ErrTooLarge = errors.New("media: attachment exceeds 5MiB limit")

// Kind classifies an attachment for rendering purposes.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

// Asset is an encoded media attachment. Payload is a data URL
// (data:<mime>;base64,<bytes>), so a renderer needs no side-channel
// MIME lookup to display it.
type Asset struct {
	Kind         Kind   `json:"kind"`
	Payload      string `json:"payload"`
	OriginalName string `json:"original_name"`
}

// DetectKind maps a MIME type to a Kind. Anything that is not image/*
// or video/* is treated as audio.
func DetectKind(mimeType string) Kind {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return KindImage
	case strings.HasPrefix(mimeType, "video/"):
		return KindVideo
	default:
		return KindAudio
	}
}

// Encode validates raw bytes and wraps them in a self-describing data URL.
// Reading the bytes off disk is the caller's job; Encode does no I/O and
// never observes partial data.
func Encode(data []byte, mimeType, originalName string) (*Asset, error) {
	if len(data) > MaxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, len(data))
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	payload := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return &Asset{
		Kind:         DetectKind(mimeType),
		Payload:      payload,
		OriginalName: originalName,
	}, nil
}
