package leaves

import (
	"context"
	"larib-portal/internal/app/contracts"
	"larib-portal/internal/app/models"
	"larib-portal/internal/pkg/constvars"
	"larib-portal/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LeaveMongoRepository struct {
	Collection *mongo.Collection
}

func NewLeaveMongoRepository(db *mongo.Client, dbName string) contracts.LeaveRepository {
	return &LeaveMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLeaves),
	}
}

func (r *LeaveMongoRepository) CreateLeave(ctx context.Context, leaveModel *models.LeaveRequest) (leaveID string, err error) {
	result, err := r.Collection.InsertOne(ctx, leaveModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *LeaveMongoRepository) FindByID(ctx context.Context, leaveID string) (*models.LeaveRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(leaveID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var leaveModel models.LeaveRequest
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&leaveModel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &leaveModel, nil
}

func (r *LeaveMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.LeaveRequest, error) {
	return r.findMany(ctx, bson.M{"userId": userID})
}

func (r *LeaveMongoRepository) FindAll(ctx context.Context) ([]models.LeaveRequest, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *LeaveMongoRepository) FindApprovedByUserID(ctx context.Context, userID string) ([]models.LeaveRequest, error) {
	return r.findMany(ctx, bson.M{
		"userId": userID,
		"status": constvars.LeaveStatusApproved,
	})
}

func (r *LeaveMongoRepository) UpdateLeave(ctx context.Context, leaveModel *models.LeaveRequest) error {
	objectID, err := primitive.ObjectIDFromHex(leaveModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"startDate":     leaveModel.StartDate,
		"endDate":       leaveModel.EndDate,
		"workingDays":   leaveModel.WorkingDays,
		"reason":        leaveModel.Reason,
		"status":        leaveModel.Status,
		"reviewedBy":    leaveModel.ReviewedBy,
		"reviewComment": leaveModel.ReviewComment,
		"updatedAt":     leaveModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *LeaveMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.LeaveRequest, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	leaveModels := []models.LeaveRequest{}
	if err := cursor.All(ctx, &leaveModels); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return leaveModels, nil
}
