package peer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blocksync7000-node/internal/chain"
)

// maxPeerListEntries caps how many addresses one peer-list response may carry.
const maxPeerListEntries = 10000

// rawFrame is an opaque gRPC message body. The node protocol carries btcd
// wire encoding rather than protobuf, so frames pass through untouched.
type rawFrame struct {
	data []byte
}

type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	frame, ok := v.(*rawFrame)
	if !ok {
		return nil, fmt.Errorf("raw codec cannot marshal %T", v)
	}
	return frame.data, nil
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	frame, ok := v.(*rawFrame)
	if !ok {
		return fmt.Errorf("raw codec cannot unmarshal into %T", v)
	}
	frame.data = append([]byte(nil), data...)
	return nil
}

func (rawCodec) Name() string { return "blocksync-raw" }

// encodeCheckpoints renders the checkpoint set as a varint count followed by
// fixed-width (hash, height) pairs.
func encodeCheckpoints(checkpoints []chain.Checkpoint) ([]byte, error) {
	var buf bytes.Buffer
	if err := wire.WriteVarInt(&buf, wire.ProtocolVersion, uint64(len(checkpoints))); err != nil {
		return nil, fmt.Errorf("encode checkpoint count: %w", err)
	}
	for _, cp := range checkpoints {
		buf.Write(cp.Hash[:])
		var height [8]byte
		binary.LittleEndian.PutUint64(height[:], cp.Height)
		buf.Write(height[:])
	}
	return buf.Bytes(), nil
}

// decodeCheckpoints is the inverse of encodeCheckpoints.
func decodeCheckpoints(data []byte) ([]chain.Checkpoint, error) {
	r := bytes.NewReader(data)
	count, err := wire.ReadVarInt(r, wire.ProtocolVersion)
	if err != nil {
		return nil, fmt.Errorf("decode checkpoint count: %w", err)
	}
	if count > maxPeerListEntries {
		return nil, fmt.Errorf("checkpoint count %d exceeds limit", count)
	}
	checkpoints := make([]chain.Checkpoint, 0, count)
	for i := uint64(0); i < count; i++ {
		var cp chain.Checkpoint
		if _, err := io.ReadFull(r, cp.Hash[:]); err != nil {
			return nil, fmt.Errorf("decode checkpoint hash: %w", err)
		}
		var height [8]byte
		if _, err := io.ReadFull(r, height[:]); err != nil {
			return nil, fmt.Errorf("decode checkpoint height: %w", err)
		}
		cp.Height = binary.LittleEndian.Uint64(height[:])
		checkpoints = append(checkpoints, cp)
	}
	return checkpoints, nil
}

// decodePeerList parses a varint count followed by var-string addresses.
func decodePeerList(data []byte) ([]string, error) {
	r := bytes.NewReader(data)
	count, err := wire.ReadVarInt(r, wire.ProtocolVersion)
	if err != nil {
		return nil, fmt.Errorf("decode peer count: %w", err)
	}
	if count > maxPeerListEntries {
		return nil, fmt.Errorf("peer count %d exceeds limit", count)
	}
	addrs := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		addr, err := wire.ReadVarString(r, wire.ProtocolVersion)
		if err != nil {
			return nil, fmt.Errorf("decode peer address: %w", err)
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// encodePeerList is the inverse of decodePeerList.
func encodePeerList(addrs []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := wire.WriteVarInt(&buf, wire.ProtocolVersion, uint64(len(addrs))); err != nil {
		return nil, fmt.Errorf("encode peer count: %w", err)
	}
	for _, addr := range addrs {
		if err := wire.WriteVarString(&buf, wire.ProtocolVersion, addr); err != nil {
			return nil, fmt.Errorf("encode peer address: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// decodeBlock deserializes one block frame.
func decodeBlock(data []byte) (*chain.Block, error) {
	var msg wire.MsgBlock
	if err := msg.Deserialize(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	return chain.NewBlock(&msg), nil
}
