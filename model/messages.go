package model

// Bubbletea messages produced by background commands. Streaming results
// carry the request sequence they were issued under so the UI can discard
// responses that outlived a clear or cancel.

type StreamChunksCollectedMsg struct {
	Seq          uint64
	Chunks       []string
	FullResponse string
}

type StreamErrorMsg struct {
	Seq uint64
	Err error
}

// DisplayChunkTickMsg drives typewriter playback. It carries the request
// sequence of the response being played so a tick orphaned by a cancel or
// clear cannot finalize a later request.
type DisplayChunkTickMsg struct {
	Seq uint64
}

type MarkdownRenderedMsg struct {
	SessionID    string
	MessageIndex int
	Rendered     string
}

type ModelsListMsg struct {
	Models       []ModelInfo
	Err          error
	ShowSelector bool
}
