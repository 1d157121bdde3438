package cartControllers

import (
	"fmt"
	"net/http"

	"github.com/beasportai/moberry/cart"
	"github.com/beasportai/moberry/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Weight    string `json:"weight" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type AdjustItemInput struct {
	Direction cart.Direction `json:"direction" binding:"required,oneof=increment decrement"`
}

type VisibilityInput struct {
	Visible       *bool `json:"visible" binding:"required"`
	OverlayActive *bool `json:"overlay_active"`
}

func sessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return val.(string), true
}

type cartState struct {
	Items         []cart.LineItem `json:"items"`
	TotalPrice    float64         `json:"total_price"`
	TotalQuantity int             `json:"total_quantity"`
	Visible       bool            `json:"visible"`
	ScrollLocked  bool            `json:"scroll_locked"`
	Selector      int             `json:"selector"`
}

func snapshot(c *cart.Cart) cartState {
	return cartState{
		Items:         c.Items(),
		TotalPrice:    c.TotalPrice(),
		TotalQuantity: c.TotalQuantity(),
		Visible:       c.Visible(),
		ScrollLocked:  c.ScrollLocked(),
		Selector:      c.Selector(),
	}
}

// GET /session/cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		var state cartState
		store.With(sid, func(crt *cart.Cart) { state = snapshot(crt) })
		c.JSON(http.StatusOK, state)
	}
}

// POST /session/cart/items
// Validates the product and weight variant against the catalog, then
// merges the quantity into the session's cart. The confirmation pushed
// to the session's clients reports the quantity actually added.
func AddCartItem(db *gorm.DB, store *cart.Store, hub *NotificationHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		var variant models.ProductVariant
		if err := db.Where("product_id = ? AND weight = ?", product.ID, input.Weight).First(&variant).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate variant"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Weight variant does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		var state cartState
		store.With(sid, func(crt *cart.Cart) {
			crt.Add(cart.LineItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     variant.Price,
				Weight:    variant.Weight,
				Image:     product.Image,
			}, input.Quantity)
			crt.ResetSelector()
			state = snapshot(crt)
		})

		hub.Notify(sid, fmt.Sprintf("Added %d × %s (%s) to your cart", input.Quantity, product.Name, variant.Weight), input.Quantity)

		c.JSON(http.StatusOK, state)
	}
}

// DELETE /session/cart/items/:item_id
// Removing an item that is not in the cart is fine; the response just
// reflects the cart as it stands.
func RemoveCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		itemID := c.Param("item_id")

		var state cartState
		store.With(sid, func(crt *cart.Cart) {
			crt.Remove(itemID)
			state = snapshot(crt)
		})
		c.JSON(http.StatusOK, state)
	}
}

// PATCH /session/cart/items/:item_id
func AdjustCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		itemID := c.Param("item_id")

		var input AdjustItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var state cartState
		store.With(sid, func(crt *cart.Cart) {
			crt.Adjust(itemID, input.Direction)
			state = snapshot(crt)
		})
		c.JSON(http.StatusOK, state)
	}
}

// PUT /session/cart/visibility
func SetCartVisibility(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input VisibilityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var state cartState
		store.With(sid, func(crt *cart.Cart) {
			crt.SetVisible(*input.Visible)
			if input.OverlayActive != nil {
				crt.SetOverlayActive(*input.OverlayActive)
			}
			state = snapshot(crt)
		})
		c.JSON(http.StatusOK, state)
	}
}

// GET /session/cart/selector
func GetSelector(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		var qty int
		store.With(sid, func(crt *cart.Cart) { qty = crt.Selector() })
		c.JSON(http.StatusOK, gin.H{"quantity": qty})
	}
}

// POST /session/cart/selector/increment
func IncrementSelector(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		var qty int
		store.With(sid, func(crt *cart.Cart) { qty = crt.IncrementSelector() })
		c.JSON(http.StatusOK, gin.H{"quantity": qty})
	}
}

// POST /session/cart/selector/decrement
func DecrementSelector(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		var qty int
		store.With(sid, func(crt *cart.Cart) { qty = crt.DecrementSelector() })
		c.JSON(http.StatusOK, gin.H{"quantity": qty})
	}
}
