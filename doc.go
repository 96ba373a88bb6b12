// Package viewpane renders the output of a periodically re-run command
// inside a scrollable terminal viewport: somewhere between watch(1) and
// less(1).
//
// The raw output of each run is parsed into an instruction stream by the
// go-ansicode decoder; a Translator folds that stream into (text, attribute)
// spans while carrying style state across lines, allocating color-pair
// slots from a PairRegistry. The spans land in a Pad, a virtual buffer
// sized to the content with a clamped scroll offset, which projects a
// window onto a tcell-backed Screen. A Watcher drives the whole cycle and
// maps keys to scroll actions.
//
// # Quick Start
//
//	registry := viewpane.NewPairRegistry(0)
//	screen, err := viewpane.OpenScreen(registry)
//	if err != nil {
//		// ...
//	}
//	defer screen.Close()
//
//	runner := viewpane.NewExecRunner([]string{"ls", "--color=always", "-l"})
//	w := viewpane.New(runner, registry,
//		viewpane.WithInterval(2*time.Second),
//		viewpane.WithStatusLine(true),
//	)
//	err = w.Run(context.Background(), screen)
//
// # Architecture
//
// The package is organized around these core types:
//
//   - Instruction: one element of a parsed line (text or styling directive)
//   - Translator: instruction streams in, attribute-resolved Spans out
//   - PairRegistry: (foreground, background) pairs mapped to small slots
//   - Pad: the virtual content buffer and its clamped scroll offset
//   - Screen: the tcell rendering surface decoding packed attributes
//   - Runner: one synchronous execution of the watched command
//   - Watcher: the refresh/input loop tying the above together
//
// Everything runs on a single goroutine; the only suspension point is the
// bounded input poll between redraws.
package viewpane
