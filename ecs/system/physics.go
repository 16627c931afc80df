package system

import (
	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePlayerGround
	collisionTypeSolid
	collisionTypeCollectible
)

const (
	defaultIterations = 20
	boundsThickness   = 1.0
)

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk space, steps
// it once per tick and copies positions back into transforms.
type PhysicsSystem struct {
	space         *cp.Space
	gravity       float64
	dt            float64
	handlersReady bool

	bodies  *intmap.Map[ecs.Entity, *bodyInfo]
	tracked []ecs.Entity

	grounded map[ecs.Entity]bool
	collects []collectContact
}

type bodyInfo struct {
	body        *cp.Body
	mainShape   *cp.Shape
	groundShape *cp.Shape
	shapes      []*cp.Shape
	static      bool
}

type collectContact struct {
	player      ecs.Entity
	collectible ecs.Entity
}

// NewPhysicsSystem creates a space pulling bodies down at gravity px/s² and
// stepping tps times per simulated second.
func NewPhysicsSystem(gravity float64, tps int) *PhysicsSystem {
	if tps <= 0 {
		tps = 60
	}
	ps := &PhysicsSystem{
		gravity:  gravity,
		dt:       1.0 / float64(tps),
		bodies:   intmap.New[ecs.Entity, *bodyInfo](32),
		grounded: make(map[ecs.Entity]bool),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// BodyCount returns the number of entities currently simulated.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil || ps.bodies == nil {
		return 0
	}
	return ps.bodies.Len()
}

// Destroy removes every body and shape and releases the space. Update is a
// no-op afterwards.
func (ps *PhysicsSystem) Destroy() {
	if ps == nil || ps.space == nil {
		return
	}
	for _, e := range ps.tracked {
		if info, ok := ps.bodies.Get(e); ok {
			ps.removeInfo(info)
		}
	}
	ps.bodies.Clear()
	ps.tracked = nil
	ps.collects = nil
	clear(ps.grounded)
	ps.space = nil
}

func (ps *PhysicsSystem) Destroyed() bool {
	return ps == nil || ps.space == nil
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
	ps.resetPlayerContacts()

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
	ps.flushPlayerContacts(w)
	ps.flushCollects(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		ref, sensorIsA := shapeRefOf(shapeA)
		if !sensorIsA || ref.kind != collisionTypePlayerGround {
			sensorIsA = false
			if ref, ok = shapeRefOf(shapeB); !ok || ref.kind != collisionTypePlayerGround {
				return true
			}
		}

		n := arb.Normal()
		if !sensorIsA {
			n = n.Neg()
		}
		// Grounded only when the surface is below the player (screen-down Y).
		if n.Y <= 0.5 {
			return true
		}
		sys.grounded[ref.entity] = true
		return true
	}

	collectHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeCollectible)
	collectHandler.UserData = ps
	collectHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return false
		}
		shapeA, shapeB := arb.Shapes()
		refA, okA := shapeRefOf(shapeA)
		refB, okB := shapeRefOf(shapeB)
		if !okA || !okB {
			return false
		}
		if refA.kind != collisionTypePlayer {
			refA, refB = refB, refA
		}
		if refA.kind == collisionTypePlayer && refB.kind == collisionTypeCollectible {
			sys.collects = append(sys.collects, collectContact{player: refA.entity, collectible: refB.entity})
		}
		// overlap only, no contact response
		return false
	}

	ps.handlersReady = true
}

// shapeRef is stored in Shape.UserData so callbacks can map shapes back to
// entities.
type shapeRef struct {
	entity ecs.Entity
	kind   cp.CollisionType
}

func shapeRefOf(shape *cp.Shape) (shapeRef, bool) {
	if shape == nil {
		return shapeRef{}, false
	}
	ref, ok := shape.UserData.(shapeRef)
	return ref, ok
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := ecs.Query(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		if info, ok := ps.bodies.Get(e); ok {
			bodyComp.Body = info.body
			bodyComp.Shape = info.mainShape
			continue
		}

		layer, hasLayer := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
		if !hasLayer {
			layer = &component.CollisionLayer{Category: 1, Mask: ^uint32(0)}
		}
		kind := collisionTypeSolid
		switch {
		case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
			kind = collisionTypePlayer
		case ecs.Has(w, e, component.CollectibleComponent.Kind()):
			kind = collisionTypeCollectible
		}

		info := ps.createBodyInfo(e, transform, bodyComp, layer, kind)
		if info == nil {
			continue
		}
		ps.bodies.Put(e, info)
		ps.tracked = append(ps.tracked, e)
		bodyComp.Body = info.body
		bodyComp.Shape = info.mainShape
	}
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody, layer *component.CollisionLayer, kind cp.CollisionType) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = 32, 32
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(layer.Category), uint(layer.Mask))

	info := &bodyInfo{static: bodyComp.Static}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(kind)
		shape.SetFilter(filter)
		shape.UserData = shapeRef{entity: e, kind: kind}
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.mainShape = shape
		info.shapes = []*cp.Shape{shape}
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, width, height)
	if bodyComp.FixedRotation {
		moment = cp.INFINITY
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.UserData = e

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(kind)
	shape.SetFilter(filter)
	shape.UserData = shapeRef{entity: e, kind: kind}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.mainShape = shape
	info.shapes = []*cp.Shape{shape}

	if kind == collisionTypePlayer {
		if ground := ps.createGroundSensor(e, width, height, body, layer); ground != nil {
			ps.space.AddShape(ground)
			info.groundShape = ground
			info.shapes = append(info.shapes, ground)
		}
	}

	return info
}

// createGroundSensor adds a thin sensor strip under the player's feet.
func (ps *PhysicsSystem) createGroundSensor(e ecs.Entity, width, height float64, body *cp.Body, layer *component.CollisionLayer) *cp.Shape {
	groundBB := cp.BB{
		L: -width * 0.45,
		B: height / 2.0,
		R: width * 0.45,
		T: height/2.0 + 2,
	}

	ground := cp.NewBox2(body, groundBB, 0)
	ground.SetSensor(true)
	ground.SetCollisionType(collisionTypePlayerGround)
	mask := layer.Mask &^ component.LayerCollectible
	ground.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer.Category), uint(mask)))
	ground.UserData = shapeRef{entity: e, kind: collisionTypePlayerGround}
	return ground
}

// syncWorldBounds builds the four edge segments once. They only collide with
// shapes whose mask includes LayerBounds, so spawned collectibles fall through.
func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.bodies.Get(boundsEntity); exists {
		return
	}
	bounds, _ := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	worldW, worldH := bounds.Width, bounds.Height
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(component.LayerBounds), uint(component.LayerPlayer))
	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, boundsThickness)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filter)
		shape.UserData = shapeRef{entity: boundsEntity, kind: collisionTypeSolid}
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	ps.bodies.Put(boundsEntity, info)
	ps.tracked = append(ps.tracked, boundsEntity)
}

func (ps *PhysicsSystem) resetPlayerContacts() {
	clear(ps.grounded)
	ps.collects = ps.collects[:0]
}

func (ps *PhysicsSystem) flushPlayerContacts(w *ecs.World) {
	ecs.ForEach(w, component.PlayerCollisionComponent.Kind(), func(e ecs.Entity, pc *component.PlayerCollision) {
		pc.Grounded = ps.grounded[e]
	})
}

func (ps *PhysicsSystem) flushCollects(w *ecs.World) {
	events := w.Events()
	for _, c := range ps.collects {
		if !ecs.IsAlive(w, c.collectible) || ecs.Has(w, c.collectible, component.DisabledComponent.Kind()) {
			continue
		}
		events.Push(ecs.Event{
			Type: ecs.EventCollision,
			Data: ecs.CollisionEvent{Entity: c.collectible, Other: c.player, Kind: ecs.CollisionEventCollect},
		})
	}
	ps.collects = ps.collects[:0]
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

// cleanupEntities drops simulation state for entities that died, lost their
// body component or were disabled.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	kept := ps.tracked[:0]
	for _, e := range ps.tracked {
		info, ok := ps.bodies.Get(e)
		if !ok {
			continue
		}
		keep := ecs.IsAlive(w, e) &&
			(ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind())) &&
			!ecs.Has(w, e, component.DisabledComponent.Kind())
		if keep {
			kept = append(kept, e)
			continue
		}

		ps.removeInfo(info)
		ps.bodies.Del(e)
		delete(ps.grounded, e)
		if bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			bodyComp.Body = nil
			bodyComp.Shape = nil
		}
	}
	ps.tracked = kept
}

func (ps *PhysicsSystem) removeInfo(info *bodyInfo) {
	if ps.space == nil || info == nil {
		return
	}
	for _, shape := range info.shapes {
		if shape != nil {
			ps.space.RemoveShape(shape)
		}
	}
	if info.body != nil && !info.static {
		ps.space.RemoveBody(info.body)
	}
}
