package db

import (
	"github.com/feedbook/feedbook-be/model"
	"github.com/feedbook/feedbook-be/store"
)

// Users is the account table. Records are appended on signup and never
// updated or deleted.
type Users struct {
	store   store.Store
	records []model.User
}

func loadUsers(s store.Store) (*Users, error) {
	records, err := loadCollection[model.User](s, UsersKey)
	if err != nil {
		return nil, err
	}
	return &Users{store: s, records: records}, nil
}

func (u *Users) Len() int {
	return len(u.records)
}

// FindByEmail does a case-sensitive exact-match scan.
func (u *Users) FindByEmail(email string) *model.User {
	for i := range u.records {
		if u.records[i].Email == email {
			user := u.records[i]
			return &user
		}
	}
	return nil
}

// FindByCredentials matches both email and password exactly.
func (u *Users) FindByCredentials(email, password string) *model.User {
	for i := range u.records {
		if u.records[i].Email == email && u.records[i].Password == password {
			user := u.records[i]
			return &user
		}
	}
	return nil
}

func (u *Users) Append(user model.User) error {
	next := append(u.records, user)
	if err := saveCollection(u.store, UsersKey, next); err != nil {
		return err
	}
	u.records = next
	return nil
}
