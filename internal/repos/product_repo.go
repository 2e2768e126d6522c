package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, category_id, seller_email,
  COALESCE(seller_name,'')   AS seller_name,
  title,
  COALESCE(description,'')   AS description,
  COALESCE(condition,'')     AS condition,
  original_price, resale_price,
  COALESCE(location,'')      AS location,
  COALESCE(image_url,'')     AS image_url,
  COALESCE(years_of_use,'')  AS years_of_use,
  COALESCE(is_sold,0)        AS is_sold,
  COALESCE(is_advertised,0)  AS is_advertised,
  COALESCE(is_reported,0)    AS is_reported,
  created_at`

// availableCond treats a missing is_sold the same as false. Listings written
// before the flag existed must keep showing up as available.
const availableCond = `(is_sold IS NULL OR is_sold = 0)`

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, category_id, seller_email, seller_name, title,
	    description, condition, original_price, resale_price, location,
	    image_url, years_of_use)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.CategoryID, p.SellerEmail, p.SellerName, p.Title,
		p.Description, p.Condition, p.OriginalPrice, p.ResalePrice, p.Location,
		p.ImageURL, p.YearsOfUse)
	return err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	return p, err
}

func (r *ProductRepo) ListByCategory(catID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE category_id = ? AND `+availableCond+`
	  ORDER BY created_at DESC`, catID)
	return out, err
}

func (r *ProductRepo) ListAdvertised() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE is_advertised = 1 AND `+availableCond+`
	  ORDER BY created_at DESC`)
	return out, err
}

func (r *ProductRepo) ListBySeller(email string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE seller_email = ?
	  ORDER BY created_at DESC`, email)
	return out, err
}

func (r *ProductRepo) ListReported() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE is_reported = 1
	  ORDER BY created_at DESC`)
	return out, err
}

func (r *ProductRepo) SetSold(id string, v bool) (int64, error) {
	return r.setFlag(`is_sold`, id, v)
}

func (r *ProductRepo) SetAdvertised(id string, v bool) (int64, error) {
	return r.setFlag(`is_advertised`, id, v)
}

func (r *ProductRepo) SetReported(id string, v bool) (int64, error) {
	return r.setFlag(`is_reported`, id, v)
}

func (r *ProductRepo) setFlag(col, id string, v bool) (int64, error) {
	res, err := r.db.Exec(`UPDATE products SET `+col+`=? WHERE id=?`, v, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ProductRepo) DeleteByID(id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
