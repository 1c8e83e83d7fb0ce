package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quickbites/auth-service/internal/core/domain"
)

const usersCollection = "users"

// UserRepository is the Mongo-backed credential store.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// EnsureUserIndexes creates the unique index on email. The index is the
// authoritative guard against a duplicate-email race between the
// service's pre-check and its insert.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Role         string             `bson:"role"`
	PhoneNumber  string             `bson:"phoneNumber"`
	CreatedAt    time.Time          `bson:"createdAt"`

	// Role-conditional fields; only the ones matching role are set.
	FullName                  string `bson:"fullName,omitempty"`
	Address                   string `bson:"address,omitempty"`
	BusinessName              string `bson:"businessName,omitempty"`
	VehicleType               string `bson:"vehicleType,omitempty"`
	VehicleRegistrationNumber string `bson:"vehicleRegistrationNumber,omitempty"`
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.coll.InsertOne(ctx, fromDomain(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByEmailAndRole(ctx context.Context, email, role string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email, "role": role})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomain(doc), nil
}

func fromDomain(user *domain.User) userDoc {
	doc := userDoc{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		PhoneNumber:  user.PhoneNumber,
		CreatedAt:    user.CreatedAt,
	}
	switch {
	case user.Customer != nil:
		doc.FullName = user.Customer.FullName
		doc.Address = user.Customer.Address
	case user.Vendor != nil:
		doc.BusinessName = user.Vendor.BusinessName
	case user.Delivery != nil:
		doc.VehicleType = user.Delivery.VehicleType
		doc.VehicleRegistrationNumber = user.Delivery.VehicleRegistrationNumber
	}
	return doc
}

func toDomain(doc userDoc) *domain.User {
	user := &domain.User{
		ID:           doc.ID.Hex(),
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         doc.Role,
		PhoneNumber:  doc.PhoneNumber,
		CreatedAt:    doc.CreatedAt.UTC(),
	}
	switch doc.Role {
	case domain.RoleCustomer:
		user.Customer = &domain.CustomerProfile{FullName: doc.FullName, Address: doc.Address}
	case domain.RoleVendor:
		user.Vendor = &domain.VendorProfile{BusinessName: doc.BusinessName}
	case domain.RoleDelivery:
		user.Delivery = &domain.DeliveryProfile{
			VehicleType:               doc.VehicleType,
			VehicleRegistrationNumber: doc.VehicleRegistrationNumber,
		}
	}
	return user
}
