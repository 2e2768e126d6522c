package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id, email, name, role,
  COALESCE(is_seller_verified,0) AS is_seller_verified,
  COALESCE(password_hash,'') AS password_hash,
  COALESCE(profile_json,'') AS profile_json,
  created_at`

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	// Exact match: email is the join key everywhere and self-authorization
	// compares it case-sensitively, so the lookup must not be looser.
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE email=?`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Insert(u domain.User) error {
	_, err := r.DB.Exec(`
	  INSERT INTO users(id,email,name,role,password_hash,profile_json)
	  VALUES(?,?,?,?,?,?)`,
		u.ID, u.Email, u.Name, string(u.Role), u.PasswordHash, u.ProfileJSON)
	return err
}

// UpsertByEmail creates or refreshes the profile keyed by email. The update
// path is a merge: fields the payload omits keep their stored values, so a
// role-less login sync cannot demote an existing seller or admin. Only a
// brand-new row gets the buyer default.
func (r *UserRepo) UpsertByEmail(u domain.User) error {
	insertRole := u.Role
	if insertRole == "" {
		insertRole = domain.RoleBuyer
	}
	_, err := r.DB.Exec(`
	  INSERT INTO users(id,email,name,role,password_hash,profile_json)
	  VALUES(?,?,?,?,?,?)
	  ON CONFLICT(email) DO UPDATE SET
	    name=COALESCE(NULLIF(?,''), users.name),
	    role=COALESCE(NULLIF(?,''), users.role),
	    profile_json=COALESCE(NULLIF(?,''), users.profile_json),
	    password_hash=COALESCE(NULLIF(?,''), users.password_hash)`,
		u.ID, u.Email, u.Name, string(insertRole), u.PasswordHash, u.ProfileJSON,
		u.Name, string(u.Role), u.ProfileJSON, u.PasswordHash)
	return err
}

func (r *UserRepo) ListByRole(role domain.Role) ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `SELECT `+userCols+` FROM users WHERE role=? ORDER BY created_at DESC`, string(role))
	return out, err
}

func (r *UserRepo) SetSellerVerified(id string, verified bool) (int64, error) {
	res, err := r.DB.Exec(`UPDATE users SET is_seller_verified=? WHERE id=?`, verified, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *UserRepo) DeleteByID(id string) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
