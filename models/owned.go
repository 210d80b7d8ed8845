package models

// Owned 有唯一归属者的实体，只有归属者可以修改或删除
type Owned interface {
	GetOwnerID() string
}

var (
	_ Owned = (*Video)(nil)
	_ Owned = (*Tweet)(nil)
	_ Owned = (*Playlist)(nil)
)
