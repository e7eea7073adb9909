// Package lwgl is the frame-update core of a hierarchical scene graph.
//
// LWGL organizes a scene as a tree of [Entity] values rooted at a single
// [Stage]. Each entity owns a local [Transform], an ordered list of child
// entities, and an ordered list of behavior [Component] attachments. Once per
// frame the stage drives the whole tree through three strictly ordered
// depth-first passes, followed by a separate late pass:
//
//  1. Entity update hooks ([Entity.OnUpdate]) run for every visible entity.
//  2. World transforms are recomposed, parent before child.
//  3. Components receive the frame's dt via [Component.Update].
//
// Each pass finishes over the entire visible subtree before the next pass
// starts, so components always observe world transforms that are globally
// consistent for the frame, and transforms always reflect every entity-level
// move made during the same frame.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	stage := lwgl.NewStage()
//	// ... add entities ...
//	lwgl.Run(stage, lwgl.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Stage.Update] and [Stage.LateUpdate] once per tick, in that order:
//
//	type Game struct{ stage *lwgl.Stage }
//
//	func (g *Game) Update() error {
//		dt := 1.0 / float64(ebiten.TPS())
//		if err := g.stage.Update(dt); err != nil {
//			return err
//		}
//		return g.stage.LateUpdate(dt)
//	}
//
// # Scene graph
//
// Entities form a tree rooted at the stage. Children inherit their parent's
// world transform:
//
//	ship := lwgl.NewEntity("ship")
//	stage.AddChild(ship)
//
//	turret := lwgl.NewEntity("turret")
//	turret.Transform.X = 12
//	ship.AddChild(turret)
//
// Per-frame behavior attaches either as an update hook or as a component:
//
//	ship.OnUpdate = func(dt float64) error {
//		ship.Transform.Rotation += dt
//		return nil
//	}
//	ship.AddComponent(lwgl.TweenPosition(ship, 100, 50, 2, ease.OutQuad))
//
// An update hook returning a non-nil error aborts the rest of the frame's
// sweep immediately and surfaces the error to the frame driver. Nothing is
// rolled back; the policy is strictly fail-fast so bugs in entity logic are
// never silently swallowed.
//
// The tree is single-threaded: one Update/LateUpdate call runs to completion
// before the next may begin, and no other goroutine may touch the tree during
// a call.
//
// [ebiten.Game]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
package lwgl
