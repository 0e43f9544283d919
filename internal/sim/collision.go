package sim

// Contact pairs a bullet slot with the enemy slot it hit.
type Contact struct {
	Bullet int
	Enemy  int
}

// DetectContacts returns bullet/enemy overlaps without mutating either set.
//
// Bullets are visited in pool order. Each active bullet resolves against the
// first alive enemy in formation order that overlaps it and that no earlier
// bullet has claimed this call.
func DetectContacts(bullets []Bullet, enemies []Enemy) []Contact {
	var contacts []Contact
	var claimed []bool

	for bi := range bullets {
		b := &bullets[bi]
		if !b.Active {
			continue
		}
		bounds := b.Bounds()

		for ei := range enemies {
			e := &enemies[ei]
			if !e.Alive || (claimed != nil && claimed[ei]) {
				continue
			}
			if !bounds.Intersects(e.Bounds()) {
				continue
			}

			if claimed == nil {
				claimed = make([]bool, len(enemies))
			}
			claimed[ei] = true
			contacts = append(contacts, Contact{Bullet: bi, Enemy: ei})
			break
		}
	}
	return contacts
}
