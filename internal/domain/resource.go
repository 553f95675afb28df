package domain

import "fmt"

// Trainer тренер
type Trainer struct {
	ID   int64
	Name string
}

// Room зал
type Room struct {
	ID       int64
	Name     string
	Capacity int
}

// Member член клуба
type Member struct {
	ID   int64
	Name string
}

// ResourceKind вид ресурса, который нельзя забронировать дважды на одно время
type ResourceKind string

const (
	ResourceTrainer ResourceKind = "trainer"
	ResourceRoom    ResourceKind = "room"
	ResourceMember  ResourceKind = "member"
)

// ResourceRef ссылка на ресурс
type ResourceRef struct {
	Kind ResourceKind
	ID   int64
}

// TrainerRef ссылка на тренера
func TrainerRef(id int64) ResourceRef { return ResourceRef{Kind: ResourceTrainer, ID: id} }

// RoomRef ссылка на зал
func RoomRef(id int64) ResourceRef { return ResourceRef{Kind: ResourceRoom, ID: id} }

// MemberRef ссылка на члена клуба
func MemberRef(id int64) ResourceRef { return ResourceRef{Kind: ResourceMember, ID: id} }

// String возвращает ключ ресурса вида "trainer:42"
func (r ResourceRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}
