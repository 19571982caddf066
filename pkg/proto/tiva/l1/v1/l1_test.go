package pb

import (
	"bytes"
	"compress/gzip"
	"io"
	"reflect"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	require.Equal(t, reflect.TypeOf(&CanTransmit{}), proto.MessageType("tiva.l1.v1.CanTransmit"))
	require.Equal(t, reflect.TypeOf(&RegSnapshot{}), proto.MessageType("tiva.l1.v1.RegSnapshot"))

	gz := proto.FileDescriptor("l1.proto")
	require.NotEmpty(t, gz)
	r, err := gzip.NewReader(bytes.NewReader(gz))
	require.NoError(t, err)
	fd, err := io.ReadAll(r)
	require.NoError(t, err)
	require.True(t, bytes.Contains(fd, []byte("tiva.l1.v1")))
	require.True(t, bytes.Contains(fd, []byte("auto_retransmit")))

	desc, path := (&HibStatus{}).Descriptor()
	require.Equal(t, gz, desc)
	require.Equal(t, []int{12}, path)
}

func TestWireFormat(t *testing.T) {
	data, err := proto.Marshal(&CanTransmit{Slot: 1, Id: 0x123, Data: []byte{0xFF}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x01, 0x10, 0xa3, 0x02, 0x22, 0x01, 0xff}, data)
	var out CanTransmit
	require.NoError(t, proto.Unmarshal(data, &out))
	require.Equal(t, uint32(0x123), out.GetId())
	require.Equal(t, []byte{0xFF}, out.GetData())
	require.False(t, out.GetAuthenticate())
}
