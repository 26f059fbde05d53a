package linmath

// Concrete instantiations for the common element types.
type (
	FVec3 = Vec3[float32]
	DVec3 = Vec3[float64]
	IVec3 = Vec3[int32]
	UVec3 = Vec3[uint32]

	FVec4 = Vec4[float32]
	DVec4 = Vec4[float64]

	FQuat = Quat[float32]
	DQuat = Quat[float64]

	FMat3 = Mat3[float32]
	DMat3 = Mat3[float64]
)
