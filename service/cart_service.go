package service

import (
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"gorm.io/gorm"
)

type CreateCartInput struct {
	KodeItem string `json:"kode_item" binding:"required"`
	Qty      int    `json:"qty" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	CartID   string `json:"cart_id" binding:"required"`
	KodeItem string `json:"kode_item" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=increment decrement input"`
	Qty      int    `json:"qty"`
}

type CartItem struct {
	CartID         string         `json:"cart_id"`
	Qty            int            `json:"qty"`
	Active         bool           `json:"active"`
	KodeItem       string         `json:"kode_item"`
	NamaProdukAsli string         `json:"nama_produk_asli"`
	Harga6         float64        `json:"harga_6"`
	Kategori       string         `json:"kategori"`
	Image          []models.Image `json:"image"`
}

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

func (s *CartService) GetCarts(userID string) ([]CartItem, error) {
	var carts []models.Cart
	if err := s.db.
		Preload("Produk.Image", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&carts).Error; err != nil {
		return nil, err
	}

	items := make([]CartItem, 0, len(carts))
	for _, cart := range carts {
		items = append(items, CartItem{
			CartID:         cart.CartID,
			Qty:            cart.Qty,
			Active:         cart.Active,
			KodeItem:       cart.Produk.KodeItem,
			NamaProdukAsli: cart.Produk.NamaProdukAsli,
			Harga6:         cart.Produk.Harga6,
			Kategori:       cart.Produk.Kategori,
			Image:          cart.Produk.Image,
		})
	}
	return items, nil
}

// CreateCart menambah qty kalau produk sudah ada di keranjang user,
// selain itu membuat baris baru.
func (s *CartService) CreateCart(in CreateCartInput, userID string) error {
	var count int64
	if err := s.db.Model(&models.Cart{}).
		Where("user_id = ? AND kode_item = ?", userID, in.KodeItem).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return s.db.Model(&models.Cart{}).
			Where("user_id = ? AND kode_item = ?", userID, in.KodeItem).
			UpdateColumn("qty", gorm.Expr("qty + ?", in.Qty)).Error
	}

	return s.db.Create(&models.Cart{
		CartID:   utils.RandomID(10),
		UserID:   userID,
		KodeItem: in.KodeItem,
		Qty:      in.Qty,
	}).Error
}

func (s *CartService) DeleteCart(cartID, userID string) error {
	if err := s.mustExist(cartID, userID); err != nil {
		return err
	}
	return s.db.Where("cart_id = ? AND user_id = ?", cartID, userID).
		Delete(&models.Cart{}).Error
}

func (s *CartService) UpdateActive(cartID, userID string, value bool) error {
	if err := s.mustExist(cartID, userID); err != nil {
		return err
	}
	return s.db.Model(&models.Cart{}).
		Where("cart_id = ? AND user_id = ?", cartID, userID).
		Update("active", value).Error
}

// UpdateQuantity mengubah qty keranjang. increment dan input dicek dulu
// terhadap total_stok produk; decrement tidak perlu.
func (s *CartService) UpdateQuantity(in UpdateQuantityInput, userID string) error {
	switch in.Type {
	case "increment":
		var produk models.Produk
		if err := s.db.Where("kode_item = ?", in.KodeItem).First(&produk).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("Product not found")
			}
			return err
		}

		var aggregate int64
		if err := s.db.Model(&models.Cart{}).
			Where("cart_id = ? AND user_id = ?", in.CartID, userID).
			Select("COALESCE(SUM(qty), 0)").
			Scan(&aggregate).Error; err != nil {
			return err
		}

		if int(aggregate)+1 > produk.TotalStok {
			return utils.UnprocessableEntity("Input stock exceeds total product stock.")
		}

		return s.db.Model(&models.Cart{}).
			Where("cart_id = ? AND user_id = ?", in.CartID, userID).
			UpdateColumn("qty", gorm.Expr("qty + 1")).Error

	case "decrement":
		return s.db.Model(&models.Cart{}).
			Where("cart_id = ? AND user_id = ?", in.CartID, userID).
			UpdateColumn("qty", gorm.Expr("qty - 1")).Error

	case "input":
		var produk models.Produk
		if err := s.db.Where("kode_item = ?", in.KodeItem).First(&produk).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("Product not found")
			}
			return err
		}

		if in.Qty > produk.TotalStok {
			return utils.UnprocessableEntity("Input stock exceeds total product stock.")
		}

		return s.db.Model(&models.Cart{}).
			Where("cart_id = ? AND user_id = ?", in.CartID, userID).
			Update("qty", in.Qty).Error
	}

	return utils.BadRequest("Unknown quantity type")
}

func (s *CartService) mustExist(cartID, userID string) error {
	var count int64
	if err := s.db.Model(&models.Cart{}).
		Where("cart_id = ? AND user_id = ?", cartID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.NotFound("Cart not found")
	}
	return nil
}
