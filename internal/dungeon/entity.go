package dungeon

import "github.com/google/uuid"

// EntityKind discriminates the closed set of things a room can contain.
type EntityKind uint8

const (
	KindTreasureChest EntityKind = iota
	KindEnemy
	KindLockPick
)

func (k EntityKind) String() string {
	switch k {
	case KindTreasureChest:
		return "treasureChest"
	case KindEnemy:
		return "enemy"
	default:
		return "lockPick"
	}
}

// Entity is a tagged union over the entity kinds. Only the fields for the
// entity's own kind are meaningful; the rest stay zero.
type Entity struct {
	ID   uuid.UUID
	Kind EntityKind
	Name string

	// Treasure chest fields.
	Locked   bool
	Treasure string
	Value    int

	// Enemy fields.
	Health      int
	Attack      int
	MoneyReward int
}

// NewTreasureChest returns a chest entity holding the named treasure.
func NewTreasureChest(id uuid.UUID, treasure string, value int, locked bool) Entity {
	return Entity{
		ID:       id,
		Kind:     KindTreasureChest,
		Name:     "Treasure Chest",
		Locked:   locked,
		Treasure: treasure,
		Value:    value,
	}
}

// NewEnemy returns an enemy entity with the given combat stats.
func NewEnemy(id uuid.UUID, name string, health, attack, moneyReward int) Entity {
	return Entity{
		ID:          id,
		Kind:        KindEnemy,
		Name:        name,
		Health:      health,
		Attack:      attack,
		MoneyReward: moneyReward,
	}
}

// NewLockPick returns a magical lock pick entity.
func NewLockPick(id uuid.UUID) Entity {
	return Entity{ID: id, Kind: KindLockPick, Name: "Magical Lock Pick"}
}
