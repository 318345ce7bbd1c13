package remote

import (
	"fmt"

	"github.com/pion/webrtc/v4"

	"github.com/phanxgames/touchinput"
)

// InputChannelLabel is the label of the data channel carrying samples.
const InputChannelLabel = "input"

// CreateInputChannel opens an ordered, reliable data channel for samples on pc.
func CreateInputChannel(pc *webrtc.PeerConnection) (*webrtc.DataChannel, error) {
	ordered := true
	dc, err := pc.CreateDataChannel(InputChannelLabel, &webrtc.DataChannelInit{
		Ordered: &ordered,
	})
	if err != nil {
		return nil, fmt.Errorf("create input channel: %w", err)
	}
	return dc, nil
}

// AttachDataChannel feeds every message on dc into recv. Pointers still down
// when the channel closes are canceled.
func AttachDataChannel(dc *webrtc.DataChannel, recv *Receiver) {
	sess := newSession(recv)
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		if err := sess.handle(msg.Data); err != nil {
			recv.log.Warnf("data channel %s: %v", dc.Label(), err)
		}
	})
	dc.OnClose(sess.close)
}

// AcceptInputChannels attaches recv to every input channel the remote peer
// opens on pc.
func AcceptInputChannels(pc *webrtc.PeerConnection, recv *Receiver) {
	pc.OnDataChannel(func(dc *webrtc.DataChannel) {
		if dc.Label() != InputChannelLabel {
			return
		}
		AttachDataChannel(dc, recv)
	})
}

// DataChannelSender streams samples over a WebRTC data channel.
type DataChannelSender struct {
	dc *webrtc.DataChannel
}

// NewDataChannelSender wraps dc.
func NewDataChannelSender(dc *webrtc.DataChannel) *DataChannelSender {
	return &DataChannelSender{dc: dc}
}

// Send writes one frame of samples as a single message.
func (s *DataChannelSender) Send(samples ...touchinput.PointerSample) error {
	if s.dc == nil {
		return fmt.Errorf("input data channel not set")
	}
	data, err := Encode(samples)
	if err != nil {
		return err
	}
	return s.dc.Send(data)
}
