package domain

type Category struct {
	ID   string `db:"id" json:"_id"`
	Name string `db:"name" json:"name"`
}

type Product struct {
	ID            string  `db:"id" json:"_id"`
	CategoryID    string  `db:"category_id" json:"categoryId"`
	SellerEmail   string  `db:"seller_email" json:"sellerEmail"`
	SellerName    string  `db:"seller_name" json:"sellerName"`
	Title         string  `db:"title" json:"productName"`
	Description   string  `db:"description" json:"description"`
	Condition     string  `db:"condition" json:"condition"`
	OriginalPrice float64 `db:"original_price" json:"originalPrice"`
	ResalePrice   float64 `db:"resale_price" json:"resalePrice"`
	Location      string  `db:"location" json:"location"`
	ImageURL      string  `db:"image_url" json:"image"`
	YearsOfUse    string  `db:"years_of_use" json:"yearsOfUse"`
	IsSold        bool    `db:"is_sold" json:"isSold"`
	IsAdvertised  bool    `db:"is_advertised" json:"isAdvertised"`
	IsReported    bool    `db:"is_reported" json:"isReported"`
	CreatedAt     string  `db:"created_at" json:"postedTime"`
}

type Booking struct {
	ID              string  `db:"id" json:"_id"`
	Email           string  `db:"email" json:"email"`
	ProductID       string  `db:"product_id" json:"productId"`
	ProductName     string  `db:"product_name" json:"productName"`
	Price           float64 `db:"price" json:"price"`
	MeetingLocation string  `db:"meeting_location" json:"meetingLocation"`
	Phone           string  `db:"phone" json:"phone"`
	Paid            bool    `db:"paid" json:"paid"`
	TransactionID   string  `db:"transaction_id" json:"transactionId"`
	CreatedAt       string  `db:"created_at" json:"createdAt"`
}

// Payment is an append-only record of a completed transaction.
type Payment struct {
	ID            string  `db:"id" json:"_id"`
	BookingID     string  `db:"booking_id" json:"bookingId"`
	Email         string  `db:"email" json:"email"`
	Price         float64 `db:"price" json:"price"`
	TransactionID string  `db:"transaction_id" json:"transactionId"`
	CreatedAt     string  `db:"created_at" json:"createdAt"`
}
