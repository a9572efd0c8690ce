package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/modlog"
	"github.com/lixenwraith/modlog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
	log *modlog.Tagged
}

func (es *echoServer) OnBoot(eng gnet.Engine) gnet.Action {
	es.log.Fixed(modlog.Str("echo server ready"))
	return gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	es.log.Debug(modlog.Str("echo"), modlog.U32(uint32(len(buf))), modlog.Str("bytes"))
	c.Write(buf)
	return gnet.None
}

func main() {
	logger := modlog.NewLogger()
	err := logger.ApplyConfigString(
		"directory=./gnet_logs",
		"enable_file=true",
		"console_level=info",
		"file_level=debug",
	)
	if err != nil {
		panic(err)
	}
	defer logger.Deinit()

	gnetAdapter := compat.NewGnetAdapter(logger)

	err = gnet.Run(
		&echoServer{log: logger.Tag("echo")},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
