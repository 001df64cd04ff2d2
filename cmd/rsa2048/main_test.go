package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blockchain "github.com/adampuchala/simple-blockchain"
)

func TestSignAndVerify(t *testing.T) {
	signer, err := blockchain.New(context.Background())
	require.NoError(t, err)
	defer func() { _ = signer.Close() }()

	res, err := signAndVerify(signer, []byte("hello"), false)
	require.NoError(t, err)
	assert.True(t, res.valid)

	res, err = signAndVerify(signer, []byte("hello"), true)
	require.NoError(t, err)
	assert.False(t, res.valid)

	res, err = signAndVerify(signer, nil, true)
	require.NoError(t, err)
	assert.False(t, res.valid)

	var buf bytes.Buffer
	res.print(&buf)
	assert.Contains(t, buf.String(), "valid:     false")
	assert.Contains(t, buf.String(), signer.ID().String())
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "rsa2048 "+blockchain.Version))
}

func TestReadMessage(t *testing.T) {
	t.Run("Flag", func(t *testing.T) {
		data, err := readMessage(true, "block", strings.NewReader("stdin"))
		require.NoError(t, err)
		assert.Equal(t, []byte("block"), data)
	})

	t.Run("EmptyFlagSkipsStdin", func(t *testing.T) {
		data, err := readMessage(true, "", iotest.ErrReader(errors.New("stdin must not be read")))
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("Stdin", func(t *testing.T) {
		data, err := readMessage(false, "", strings.NewReader("from stdin"))
		require.NoError(t, err)
		assert.Equal(t, []byte("from stdin"), data)
	})

	t.Run("StdinError", func(t *testing.T) {
		_, err := readMessage(false, "", iotest.ErrReader(errors.New("closed")))
		assert.Error(t, err)
	})
}

func TestFlagSet(t *testing.T) {
	assert.False(t, flagSet("message"))
}
