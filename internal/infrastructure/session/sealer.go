package session

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/secretbox"
)

// sealedMagic prefijo de los archivos de sesión sellados.
var sealedMagic = []byte("VPS1")

var errSealedWithoutSecret = errors.New("session: archivo sellado; configure SESSION_SECRET")

// sealer cifra el documento de sesión con secretbox (XSalsa20-Poly1305).
// La clave se deriva del secreto configurado con BLAKE2b-256.
type sealer struct {
	key [32]byte
}

func newSealer(secret string) *sealer {
	return &sealer{key: blake2b.Sum256([]byte(secret))}
}

func (s *sealer) seal(plain []byte) ([]byte, error) {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("session: generar nonce: %w", err)
	}
	out := append([]byte{}, sealedMagic...)
	out = append(out, nonce[:]...)
	return secretbox.Seal(out, plain, &nonce, &s.key), nil
}

func (s *sealer) open(data []byte) ([]byte, error) {
	body := data[len(sealedMagic):]
	if len(body) < 24+secretbox.Overhead {
		return nil, fmt.Errorf("session: archivo sellado truncado")
	}
	var nonce [24]byte
	copy(nonce[:], body[:24])
	plain, ok := secretbox.Open(nil, body[24:], &nonce, &s.key)
	if !ok {
		return nil, fmt.Errorf("session: no se pudo abrir el archivo (secreto incorrecto o datos corruptos)")
	}
	return plain, nil
}

func isSealed(data []byte) bool {
	return bytes.HasPrefix(data, sealedMagic)
}
