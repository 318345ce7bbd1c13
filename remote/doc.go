// Package remote carries pointer samples between processes, so a phone,
// browser or test harness can drive a game's TouchInput.
//
// A [Receiver] is a touchinput.Source fed from network goroutines. Connect
// peers to it with [Handler] (WebSocket) or [AttachDataChannel] (WebRTC),
// and send from the other end with [WebSocketSender] or
// [DataChannelSender]. Samples travel as JSON arrays of [Message].
package remote
