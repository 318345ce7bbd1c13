// Package touchinput routes per-frame pointer input to the objects under each
// pointer, for games built on [Ebitengine] and other frame-driven loops.
//
// Every frame, pointer samples (mouse buttons, touches, injected or remote
// input) are hit-tested through an ordered list of cameras. The first camera
// whose ray hits an object decides where a pointer goes down, and that
// object then owns the pointer until it ends:
//
//	onTouchDown        pointer began over the object
//	onTouchMove        owned pointer moved (or stayed put, if enabled)
//	onTouchUpAsButton  owned pointer lifted over the same object
//	onTouchUp          owned pointer lifted anywhere
//	onTouchEnter       pointer started hovering the object (optional)
//	onTouchExit        pointer stopped hovering the object (optional)
//
// # Quick start
//
//	world := touchinput.NewWorld()
//	cam := world.NewCamera("main", touchinput.Rect{Width: 640, Height: 480})
//	cam.X, cam.Y = 320, 240
//
//	button := touchinput.NewHitObject("button", touchinput.HitRect{Width: 80, Height: 40})
//	button.AddListener(touchinput.ListenerFuncs{
//		OnTouchUpAsButton: func(ctx touchinput.TouchContext) { fmt.Println("pressed") },
//	})
//	world.Root().AddChild(button)
//
//	input, err := touchinput.NewTouchInput(world, touchinput.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	input.AddSource(touchinput.NewEbitenSource())
//
// Then call input.Update from the game's Update once per frame.
//
// # Scenes and cameras
//
// [World] is the built-in [Scene]: a tree of [Object] values hit-tested with
// their [HitShape] on the plane z = world Z, plus orthographic [Camera]
// viewpoints. Any other hit-test provider can be used by implementing
// [Scene] and [Viewpoint].
//
// # Sources
//
// [EbitenSource] polls Ebitengine. [Injector] and [ScriptRunner] produce
// synthetic input for tests and automation. The remote package feeds samples
// from WebSocket or WebRTC peers, and gioinput adapts Gio pointer events.
// Platform adapters normalize through [MouseNormalizer] and
// [TouchNormalizer].
//
// [Ebitengine]: https://ebitengine.org
package touchinput
