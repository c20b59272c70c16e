// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

// standardEntries is the subset of the PS3.6 data dictionary known to StandardDictionary.
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
var standardEntries = []DictionaryEntry{
	// file meta information
	{0x00020000, "FileMetaInformationGroupLength", "File Meta Information Group Length", ULVR},
	{0x00020001, "FileMetaInformationVersion", "File Meta Information Version", OBVR},
	{0x00020002, "MediaStorageSOPClassUID", "Media Storage SOP Class UID", UIVR},
	{0x00020003, "MediaStorageSOPInstanceUID", "Media Storage SOP Instance UID", UIVR},
	{0x00020010, "TransferSyntaxUID", "Transfer Syntax UID", UIVR},
	{0x00020012, "ImplementationClassUID", "Implementation Class UID", UIVR},
	{0x00020013, "ImplementationVersionName", "Implementation Version Name", SHVR},
	{0x00020016, "SourceApplicationEntityTitle", "Source Application Entity Title", AEVR},

	// identification
	{0x00080005, "SpecificCharacterSet", "Specific Character Set", CSVR},
	{0x00080008, "ImageType", "Image Type", CSVR},
	{0x00080012, "InstanceCreationDate", "Instance Creation Date", DAVR},
	{0x00080013, "InstanceCreationTime", "Instance Creation Time", TMVR},
	{0x00080016, "SOPClassUID", "SOP Class UID", UIVR},
	{0x00080018, "SOPInstanceUID", "SOP Instance UID", UIVR},
	{0x00080020, "StudyDate", "Study Date", DAVR},
	{0x00080021, "SeriesDate", "Series Date", DAVR},
	{0x00080022, "AcquisitionDate", "Acquisition Date", DAVR},
	{0x00080023, "ContentDate", "Content Date", DAVR},
	{0x0008002A, "AcquisitionDateTime", "Acquisition DateTime", DTVR},
	{0x00080030, "StudyTime", "Study Time", TMVR},
	{0x00080031, "SeriesTime", "Series Time", TMVR},
	{0x00080032, "AcquisitionTime", "Acquisition Time", TMVR},
	{0x00080033, "ContentTime", "Content Time", TMVR},
	{0x00080050, "AccessionNumber", "Accession Number", SHVR},
	{0x00080060, "Modality", "Modality", CSVR},
	{0x00080064, "ConversionType", "Conversion Type", CSVR},
	{0x00080070, "Manufacturer", "Manufacturer", LOVR},
	{0x00080080, "InstitutionName", "Institution Name", LOVR},
	{0x00080081, "InstitutionAddress", "Institution Address", STVR},
	{0x00080090, "ReferringPhysicianName", "Referring Physician's Name", PNVR},
	{0x00080100, "CodeValue", "Code Value", SHVR},
	{0x00080102, "CodingSchemeDesignator", "Coding Scheme Designator", SHVR},
	{0x00080104, "CodeMeaning", "Code Meaning", LOVR},
	{0x00081010, "StationName", "Station Name", SHVR},
	{0x00081030, "StudyDescription", "Study Description", LOVR},
	{0x0008103E, "SeriesDescription", "Series Description", LOVR},
	{0x00081040, "InstitutionalDepartmentName", "Institutional Department Name", LOVR},
	{0x00081050, "PerformingPhysicianName", "Performing Physician's Name", PNVR},
	{0x00081060, "NameOfPhysiciansReadingStudy", "Name of Physician(s) Reading Study", PNVR},
	{0x00081070, "OperatorsName", "Operators' Name", PNVR},
	{0x00081090, "ManufacturerModelName", "Manufacturer's Model Name", LOVR},
	{0x00081110, "ReferencedStudySequence", "Referenced Study Sequence", SQVR},
	{0x00081111, "ReferencedPerformedProcedureStepSequence", "Referenced Performed Procedure Step Sequence", SQVR},
	{0x00081115, "ReferencedSeriesSequence", "Referenced Series Sequence", SQVR},
	{0x00081140, "ReferencedImageSequence", "Referenced Image Sequence", SQVR},
	{0x00081150, "ReferencedSOPClassUID", "Referenced SOP Class UID", UIVR},
	{0x00081155, "ReferencedSOPInstanceUID", "Referenced SOP Instance UID", UIVR},
	{0x00082111, "DerivationDescription", "Derivation Description", STVR},

	// patient
	{0x00100010, "PatientName", "Patient's Name", PNVR},
	{0x00100020, "PatientID", "Patient ID", LOVR},
	{0x00100021, "IssuerOfPatientID", "Issuer of Patient ID", LOVR},
	{0x00100030, "PatientBirthDate", "Patient's Birth Date", DAVR},
	{0x00100032, "PatientBirthTime", "Patient's Birth Time", TMVR},
	{0x00100040, "PatientSex", "Patient's Sex", CSVR},
	{0x00101000, "OtherPatientIDs", "Other Patient IDs", LOVR},
	{0x00101001, "OtherPatientNames", "Other Patient Names", PNVR},
	{0x00101010, "PatientAge", "Patient's Age", ASVR},
	{0x00101020, "PatientSize", "Patient's Size", DSVR},
	{0x00101030, "PatientWeight", "Patient's Weight", DSVR},
	{0x00102160, "EthnicGroup", "Ethnic Group", SHVR},
	{0x001021B0, "AdditionalPatientHistory", "Additional Patient History", LTVR},
	{0x00104000, "PatientComments", "Patient Comments", LTVR},

	// acquisition
	{0x00180010, "ContrastBolusAgent", "Contrast/Bolus Agent", LOVR},
	{0x00180015, "BodyPartExamined", "Body Part Examined", CSVR},
	{0x00180020, "ScanningSequence", "Scanning Sequence", CSVR},
	{0x00180021, "SequenceVariant", "Sequence Variant", CSVR},
	{0x00180022, "ScanOptions", "Scan Options", CSVR},
	{0x00180023, "MRAcquisitionType", "MR Acquisition Type", CSVR},
	{0x00180024, "SequenceName", "Sequence Name", SHVR},
	{0x00180050, "SliceThickness", "Slice Thickness", DSVR},
	{0x00180060, "KVP", "KVP", DSVR},
	{0x00180080, "RepetitionTime", "Repetition Time", DSVR},
	{0x00180081, "EchoTime", "Echo Time", DSVR},
	{0x00180082, "InversionTime", "Inversion Time", DSVR},
	{0x00180083, "NumberOfAverages", "Number of Averages", DSVR},
	{0x00180084, "ImagingFrequency", "Imaging Frequency", DSVR},
	{0x00180087, "MagneticFieldStrength", "Magnetic Field Strength", DSVR},
	{0x00180088, "SpacingBetweenSlices", "Spacing Between Slices", DSVR},
	{0x00180091, "EchoTrainLength", "Echo Train Length", ISVR},
	{0x00181000, "DeviceSerialNumber", "Device Serial Number", LOVR},
	{0x00181020, "SoftwareVersions", "Software Versions", LOVR},
	{0x00181030, "ProtocolName", "Protocol Name", LOVR},
	{0x00181150, "ExposureTime", "Exposure Time", ISVR},
	{0x00181151, "XRayTubeCurrent", "X-Ray Tube Current", ISVR},
	{0x00181152, "Exposure", "Exposure", ISVR},
	{0x00181314, "FlipAngle", "Flip Angle", DSVR},
	{0x00185100, "PatientPosition", "Patient Position", CSVR},

	// study and series relationship
	{0x0020000D, "StudyInstanceUID", "Study Instance UID", UIVR},
	{0x0020000E, "SeriesInstanceUID", "Series Instance UID", UIVR},
	{0x00200010, "StudyID", "Study ID", SHVR},
	{0x00200011, "SeriesNumber", "Series Number", ISVR},
	{0x00200012, "AcquisitionNumber", "Acquisition Number", ISVR},
	{0x00200013, "InstanceNumber", "Instance Number", ISVR},
	{0x00200020, "PatientOrientation", "Patient Orientation", CSVR},
	{0x00200032, "ImagePositionPatient", "Image Position (Patient)", DSVR},
	{0x00200037, "ImageOrientationPatient", "Image Orientation (Patient)", DSVR},
	{0x00200052, "FrameOfReferenceUID", "Frame of Reference UID", UIVR},
	{0x00200060, "Laterality", "Laterality", CSVR},
	{0x00201040, "PositionReferenceIndicator", "Position Reference Indicator", LOVR},
	{0x00201041, "SliceLocation", "Slice Location", DSVR},
	{0x00204000, "ImageComments", "Image Comments", LTVR},

	// image pixel
	{0x00280002, "SamplesPerPixel", "Samples per Pixel", USVR},
	{0x00280004, "PhotometricInterpretation", "Photometric Interpretation", CSVR},
	{0x00280006, "PlanarConfiguration", "Planar Configuration", USVR},
	{0x00280008, "NumberOfFrames", "Number of Frames", ISVR},
	{0x00280009, "FrameIncrementPointer", "Frame Increment Pointer", ATVR},
	{0x00280010, "Rows", "Rows", USVR},
	{0x00280011, "Columns", "Columns", USVR},
	{0x00280030, "PixelSpacing", "Pixel Spacing", DSVR},
	{0x00280034, "PixelAspectRatio", "Pixel Aspect Ratio", ISVR},
	{0x00280100, "BitsAllocated", "Bits Allocated", USVR},
	{0x00280101, "BitsStored", "Bits Stored", USVR},
	{0x00280102, "HighBit", "High Bit", USVR},
	{0x00280103, "PixelRepresentation", "Pixel Representation", USVR},
	{0x00280106, "SmallestImagePixelValue", "Smallest Image Pixel Value", USVR},
	{0x00280107, "LargestImagePixelValue", "Largest Image Pixel Value", USVR},
	{0x00280120, "PixelPaddingValue", "Pixel Padding Value", USVR},
	{0x00281050, "WindowCenter", "Window Center", DSVR},
	{0x00281051, "WindowWidth", "Window Width", DSVR},
	{0x00281052, "RescaleIntercept", "Rescale Intercept", DSVR},
	{0x00281053, "RescaleSlope", "Rescale Slope", DSVR},
	{0x00281054, "RescaleType", "Rescale Type", LOVR},
	{0x00282110, "LossyImageCompression", "Lossy Image Compression", CSVR},

	// procedure
	{0x00321032, "RequestingPhysician", "Requesting Physician", PNVR},
	{0x00321060, "RequestedProcedureDescription", "Requested Procedure Description", LOVR},
	{0x00400244, "PerformedProcedureStepStartDate", "Performed Procedure Step Start Date", DAVR},
	{0x00400245, "PerformedProcedureStepStartTime", "Performed Procedure Step Start Time", TMVR},
	{0x00400253, "PerformedProcedureStepID", "Performed Procedure Step ID", SHVR},
	{0x00400254, "PerformedProcedureStepDescription", "Performed Procedure Step Description", LOVR},
	{0x00400275, "RequestAttributesSequence", "Request Attributes Sequence", SQVR},
	{0x0040A040, "ValueType", "Value Type", CSVR},
	{0x0040A043, "ConceptNameCodeSequence", "Concept Name Code Sequence", SQVR},
	{0x0040A160, "TextValue", "Text Value", UTVR},
	{0x0040A730, "ContentSequence", "Content Sequence", SQVR},
	{0x00420011, "EncapsulatedDocument", "Encapsulated Document", OBVR},
	{0x00540081, "NumberOfSlices", "Number of Slices", USVR},
	{0x00880200, "IconImageSequence", "Icon Image Sequence", SQVR},

	// pixel data
	{0x7FE00008, "FloatPixelData", "Float Pixel Data", OFVR},
	{0x7FE00009, "DoubleFloatPixelData", "Double Float Pixel Data", ODVR},
	{0x7FE00010, "PixelData", "Pixel Data", OWVR},
}
