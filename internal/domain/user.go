package domain

import "encoding/json"

// Role is the closed set of account roles. Every authorization decision
// goes through this type instead of ad-hoc string comparisons.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID             string `db:"id" json:"_id"`
	Email          string `db:"email" json:"email"`
	Name           string `db:"name" json:"name"`
	Role           Role   `db:"role" json:"role"`
	SellerVerified bool   `db:"is_seller_verified" json:"isSellerVerified"`
	PasswordHash   string `db:"password_hash" json:"-"`
	ProfileJSON    string `db:"profile_json" json:"-"`
	CreatedAt      string `db:"created_at" json:"createdAt"`
}

// MarshalJSON folds the stored extra profile fields back into the top level
// of the object, where the clients originally wrote them. Known fields win
// on a name clash; the password hash never serializes.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	b, err := json.Marshal(plain(u))
	if err != nil || u.ProfileJSON == "" {
		return b, err
	}

	var extra map[string]any
	if json.Unmarshal([]byte(u.ProfileJSON), &extra) != nil || len(extra) == 0 {
		return b, nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return b, nil
	}
	for k, v := range extra {
		if _, taken := m[k]; !taken {
			m[k] = v
		}
	}
	return json.Marshal(m)
}
