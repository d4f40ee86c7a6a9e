package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidIndex    map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidIndex:    make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	s.GameObjects = append(s.GameObjects, g)
	s.register(g)
}

func (s *Scene) register(g *GameObject) {
	g.Walk(func(o *GameObject) {
		o.Scene = s
		s.uidIndex[o.UID] = o
	})
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			s.unregister(g)
			return
		}
	}
}

func (s *Scene) unregister(g *GameObject) {
	g.Walk(func(o *GameObject) {
		delete(s.uidIndex, o.UID)
		o.Scene = nil
	})
}

// FindByUID looks up objects registered with the scene, including
// descendants that were attached before AddGameObject.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidIndex[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	for _, g := range s.GameObjects {
		g.Walk(func(o *GameObject) {
			if found == nil && o.Name == name {
				found = o
			}
		})
	}
	return found
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

// Each visits every object in the scene graph, active or not.
func (s *Scene) Each(fn func(*GameObject)) {
	for _, g := range s.GameObjects {
		g.Walk(fn)
	}
}
