// Package rowan persists small 2D scenes as flat text and drives their
// editing through a declarative, configurable input layer for [Ebitengine].
//
// Rowan has two halves that share a value model but are otherwise
// independent:
//
// # Scene persistence
//
// A scene is a sequence of entities, each serialized to one line of
// escaped key=value fields with single-character type tags:
//
//	tag=splayer1;x position=n1000;y position=n0;character overlap=btrue;
//
// [Record] holds one entity's fields in insertion order, [Record.Encode]
// and [ParseRecords] round-trip records to and from text, and
// [EncodeScene]/[RestoreScene] connect records to [Entity] values.
// Decoding is tolerant: a malformed payload degrades to [Absent], an
// unknown tag never aborts the parse, and one bad line never discards
// the rest of a scene.
//
// Entities come in two variants. [Sprite] supports the full field set.
// [BoundSprite] wraps a pre-existing actor whose image and animation are
// owned elsewhere; setters outside its capability set fail with
// [ErrUnsupported] so callers can skip those fields during restore.
//
// # Input bindings
//
// A [Bindings] table declares named events, each with an optional scalar
// argument and one or more raw keys:
//
//	bindings := rowan.Bindings{
//		{Event: "nudge", Arg: rowan.Number(1), Keys: []rowan.Key{rowan.KeyLeft, rowan.KeyRight}},
//		{Event: "mod", Arg: rowan.Number(0.1), Keys: []rowan.Key{rowan.KeyZ}},
//		{Event: "mod", Arg: rowan.Number(10), Keys: []rowan.Key{rowan.KeyB}},
//	}
//
// A [Dispatcher] polls raw key state once per tick from a [Source],
// detects press/release edges, and invokes callbacks exactly once per
// transition. [Dispatcher.Held] answers level queries ("is this event
// currently held, and with which argument") and [Dispatcher.JustPressed]
// answers instant queries ("did this event's key go down on this exact
// poll"). When one event name appears in several bindings, declaration
// order decides which argument wins.
//
// [EbitenSource] adapts ebiten keyboard and mouse state to the [Source]
// interface; tests and headless tools can supply their own.
//
// Binding tables can be declared in code or loaded from JSON with
// [LoadBindings].
//
// Rowan performs no rendering and no file I/O itself; it produces and
// consumes in-memory text and booleans. See examples/editor for a
// runnable scene editor built on the full surface.
//
// [Ebitengine]: https://ebitengine.org
package rowan
