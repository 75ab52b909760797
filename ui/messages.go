package ui

import (
	"gemtui/model"
	"gemtui/provider"
)

// Message type aliases - the data types live in the model package
type Message = model.Message

type streamChunksCollectedMsg = model.StreamChunksCollectedMsg
type streamErrorMsg = model.StreamErrorMsg
type displayChunkTickMsg = model.DisplayChunkTickMsg
type markdownRenderedMsg = model.MarkdownRenderedMsg
type modelsListMsg = model.ModelsListMsg
type pingProviderMsg = provider.PingProviderMsg
