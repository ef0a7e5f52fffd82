package codec

import "github.com/duocodec/duocodec/wire"

func viewOf(data []byte) wire.View {
	return wire.NewView(data)
}
